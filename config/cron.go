package config

import (
	"mbs.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs returns the built-in job table. Schedules come from env so .env
// must be loaded before the scheduler starts.
func CronJobs() map[string]CronJob {
	return map[string]CronJob{
		"ordersrefresh":  {Schedule: GetEnv("ORDERS_REFRESH_SCHEDULE", "@every 2s"), Job: jobs.OrdersRefreshJob},
		"catalogrefresh": {Schedule: GetEnv("CATALOG_REFRESH_SCHEDULE", "@every 1m"), Job: jobs.CatalogRefreshJob},
		// Add more jobs here
	}
}
