package job

import (
	"thinker-ui/database"
	"thinker-ui/logger"
	"thinker-ui/web/global"
)

// CheckpointDbJob periodically flushes the sqlite write-ahead log so the main
// database file stays current for backups.
type CheckpointDbJob struct{}

func NewCheckpointDbJob() *CheckpointDbJob {
	return new(CheckpointDbJob)
}

func (j *CheckpointDbJob) Run() {
	// Do not touch the database while the server is shutting down.
	if server := global.GetWebServer(); server != nil && server.GetCtx().Err() != nil {
		return
	}
	if err := database.Checkpoint(); err != nil {
		logger.Warningf("database checkpoint failed: %v", err)
	}
}
