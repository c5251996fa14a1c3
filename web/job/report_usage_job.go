package job

import (
	"thinker-ui/logger"
	"thinker-ui/util/metrics"
)

// ReportUsageJob writes a periodic usage summary to the log.
type ReportUsageJob struct{}

func NewReportUsageJob() *ReportUsageJob {
	return new(ReportUsageJob)
}

func (j *ReportUsageJob) Run() {
	s := metrics.Collect()
	logger.Infof("usage: requests=%d logins=%d/%d(failed) posts=%d notes=%d",
		s.RequestsServed, s.LoginsSucceeded, s.LoginsFailed, s.PostsCreated, s.NotesCreated)
}
