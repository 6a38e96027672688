// File: /jobs/service_reminder_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"motogarage-api/repositories"
	"motogarage-api/services"
)

// ServiceReminderJob periodically scans active user bikes and logs any
// components that are overdue for service.
type ServiceReminderJob struct {
	db              *gorm.DB
	maintenanceRepo *repositories.MaintenanceRepository
	predictor       *services.MaintenancePredictor
	ticker          *time.Ticker
	done            chan bool
}

// NewServiceReminderJob creates a new service reminder job
func NewServiceReminderJob(db *gorm.DB, interval time.Duration) *ServiceReminderJob {
	return &ServiceReminderJob{
		db:              db,
		maintenanceRepo: repositories.NewMaintenanceRepository(db),
		predictor:       services.NewMaintenancePredictor(),
		ticker:          time.NewTicker(interval),
		done:            make(chan bool),
	}
}

// Start begins the reminder job
func (j *ServiceReminderJob) Start() {
	fmt.Println("Service reminder job started")

	go func() {
		// Run immediately on start
		j.scan()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.scan()
			case <-j.done:
				fmt.Println("Service reminder job stopped")
				return
			}
		}
	}()
}

// Stop stops the reminder job
func (j *ServiceReminderJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// scan checks every active user bike for overdue components
func (j *ServiceReminderJob) scan() {
	fmt.Println("Running service reminder scan...")

	userBikes, err := j.maintenanceRepo.GetActiveUserBikes()
	if err != nil {
		fmt.Printf("Error during service reminder scan: %v\n", err)
		return
	}

	overdueBikes := 0
	for _, userBike := range userBikes {
		history, err := j.maintenanceRepo.GetRecentRecords(userBike.ID, 20)
		if err != nil {
			fmt.Printf("Error loading maintenance history for %s: %v\n", userBike.ID, err)
			continue
		}

		predictions, err := j.predictor.PredictMaintenance(userBike.CurrentKM, history, time.Now())
		if err != nil {
			fmt.Printf("Error predicting maintenance for %s: %v\n", userBike.ID, err)
			continue
		}

		for _, prediction := range predictions {
			if prediction.Status != "overdue" {
				break // predictions are sorted most urgent first
			}
			fmt.Printf("Reminder: %s %s (%s) is overdue for %s, %d km since last service\n",
				userBike.Bike.Brand,
				userBike.Bike.Model,
				userBike.RegistrationNumber,
				prediction.Component,
				prediction.KMSinceService,
			)
			overdueBikes++
		}
	}

	fmt.Printf("Service reminder scan completed, %d overdue components found\n", overdueBikes)
}
