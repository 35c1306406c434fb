package miner

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveMineRange(found bool, tasks int, started time.Time)
		ObserveTask(found bool, scanned uint64, started time.Time)
	}
)
