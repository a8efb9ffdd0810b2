// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// OrderProgressJob stands in for the restaurant kitchen and the delivery partner. Each
// tick it selects orders that have sat in confirmed, preparing, ready or
// out_for_delivery longer than the configured delay and advances each one step:
//
//	confirmed -> preparing -> ready -> out_for_delivery -> delivered
//
// Orders that are still placed wait for payment and are never advanced. Every step runs in
// its own transaction under the order row lock, so a concurrent cancellation either wins
// (the step is skipped with a conflict) or sees the new status.
//
// JobManager groups jobs for the application lifecycle:
//
//	manager := jobs.NewJobManager(jobs.NewOrderProgressJob(uowFactory, advancer, cfg, logger))
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
