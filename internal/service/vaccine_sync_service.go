package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Batch size for warehouse reads - process 500 records at a time
	vaccineSyncBatchSize = 500

	// Timeout for a single sync pass
	vaccineSyncTimeout = 5 * time.Minute
)

// vaccineRecord is one row of the warehouse vaccination table.
type vaccineRecord struct {
	NoKTP        string `gorm:"column:no_ktp"`
	VaccineType  string `gorm:"column:vaccine_type"`
	VaccineCount int    `gorm:"column:vaccine_count"`
}

// VaccineSyncService periodically copies vaccination status from the
// analytics warehouse into the clinic's patient records, matched by KTP
// number. Warehouse rows with no matching patient are skipped; the warehouse
// covers the whole population, not just this clinic's patients.
type VaccineSyncService struct {
	clinicDB    *gorm.DB
	warehouseDB *gorm.DB
	log         *logrus.Logger

	patientRepo repository.PatientRepository
	table       string
	interval    time.Duration

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewVaccineSyncService creates the sync service. Call Start to launch the
// periodic loop and Stop during graceful shutdown.
func NewVaccineSyncService(
	clinicDB *gorm.DB,
	warehouseDB *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	table string,
	interval time.Duration,
) *VaccineSyncService {
	return &VaccineSyncService{
		clinicDB:    clinicDB,
		warehouseDB: warehouseDB,
		log:         log,
		patientRepo: patientRepo,
		table:       table,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start runs one sync pass immediately, then repeats on the configured
// interval until Stop is called.
func (s *VaccineSyncService) Start() {
	s.wg.Add(1)
	go s.loop()
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *VaccineSyncService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("VaccineSyncService stopped")
	}
}

func (s *VaccineSyncService) loop() {
	defer s.wg.Done()

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopChan:
			return
		}
	}
}

func (s *VaccineSyncService) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), vaccineSyncTimeout)
	defer cancel()

	if err := s.SyncOnce(ctx); err != nil {
		s.log.Errorf("Vaccine sync pass failed: %+v", err)
	}
}

// SyncOnce reads the warehouse table in batches and updates matching
// patients. Each batch is its own clinic-DB transaction so a failure late in
// the pass does not roll back earlier batches.
func (s *VaccineSyncService) SyncOnce(ctx context.Context) error {
	s.log.Info("Starting vaccine sync from warehouse...")
	startTime := time.Now()

	offset := 0
	totalMatched := 0

	for {
		var records []vaccineRecord

		err := s.warehouseDB.WithContext(ctx).
			Table(s.table).
			Select("no_ktp, vaccine_type, vaccine_count").
			Order("no_ktp").
			Limit(vaccineSyncBatchSize).
			Offset(offset).
			Scan(&records).Error
		if err != nil {
			return fmt.Errorf("query warehouse at offset %d: %w", offset, err)
		}

		if len(records) == 0 {
			break
		}

		matched, err := s.applyBatch(ctx, records)
		if err != nil {
			return err
		}
		totalMatched += matched

		if len(records) < vaccineSyncBatchSize {
			break
		}
		offset += vaccineSyncBatchSize
	}

	s.log.Infof("Vaccine sync completed: %d patients updated in %s", totalMatched, time.Since(startTime))
	return nil
}

func (s *VaccineSyncService) applyBatch(ctx context.Context, records []vaccineRecord) (int, error) {
	tx := s.clinicDB.WithContext(ctx).Begin()
	defer tx.Rollback()

	matched := 0
	for i := range records {
		record := records[i]
		rows, err := s.patientRepo.UpdateVaccineByKTP(tx, record.NoKTP, &record.VaccineType, &record.VaccineCount)
		if err != nil {
			return 0, fmt.Errorf("update patient %s: %w", record.NoKTP, err)
		}
		matched += int(rows)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("commit vaccine batch: %w", err)
	}

	return matched, nil
}
