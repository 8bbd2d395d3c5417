package controllers

import (
	"context"

	"github.com/templetrust/sevaledger/config"
	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/utils"
)

var (
	cfg       *config.Config
	svc       *ledger.Service
	readModel *ledger.ReadModel
)

// Init injects the loaded configuration and the ledger service into the
// handler package, and warms the live read model that backs the dashboard
// and stream snapshots. Called once from main before routes are served.
func Init(c *config.Config, s *ledger.Service) {
	cfg = c
	svc = s

	if readModel != nil {
		readModel.Close()
	}
	rm, err := ledger.NewReadModel(context.Background(), s.Store, s.Broker)
	if err != nil {
		// handlers fall back to direct store reads
		utils.LogError("Read model unavailable, serving reads from the store: %v", err)
		readModel = nil
		return
	}
	readModel = rm
}
