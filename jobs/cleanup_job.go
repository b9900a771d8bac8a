package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nurbekov/paylinks/database"
	"github.com/nurbekov/paylinks/models"
)

// CleanupOrphanedUploads removes files in the upload directory that no row
// references anymore. Row deletion commits before the file is removed, so a
// crash in between leaves orphans behind; this job collects them. Files newer
// than an hour are skipped to avoid racing an in-flight form submission.
func CleanupOrphanedUploads(uploadDir string) {
	log.Println("Running job: CleanupOrphanedUploads...")

	referenced := make(map[string]bool)
	collect := func(paths []*string) {
		for _, p := range paths {
			if p != nil && *p != "" {
				referenced[filepath.Base(*p)] = true
			}
		}
	}

	var methods []models.PaymentMethod
	if err := database.DB.Select("logo_path", "qr_code_path").Find(&methods).Error; err != nil {
		log.Printf("Cleanup: failed to load payment methods: %v", err)
		return
	}
	for _, m := range methods {
		collect([]*string{m.LogoPath, m.QRCodePath})
	}

	var bankMethods []models.BankPaymentMethod
	if err := database.DB.Select("logo_path").Find(&bankMethods).Error; err != nil {
		log.Printf("Cleanup: failed to load bank methods: %v", err)
		return
	}
	for _, m := range bankMethods {
		collect([]*string{m.LogoPath})
	}

	var platforms []models.Platform
	if err := database.DB.Select("logo_path").Find(&platforms).Error; err != nil {
		log.Printf("Cleanup: failed to load platforms: %v", err)
		return
	}
	for _, p := range platforms {
		collect([]*string{p.LogoPath})
	}

	var tutorials []models.Tutorial
	if err := database.DB.Select("image_path").Find(&tutorials).Error; err != nil {
		log.Printf("Cleanup: failed to load tutorials: %v", err)
		return
	}
	for _, t := range tutorials {
		collect([]*string{t.ImagePath})
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		log.Printf("Cleanup: failed to read upload directory: %v", err)
		return
	}

	removed := 0
	cutoff := time.Now().Add(-1 * time.Hour)
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			log.Printf("Cleanup: failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Removed %d orphaned upload(s).", removed)
	}
}
