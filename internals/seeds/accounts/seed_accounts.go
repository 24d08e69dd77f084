package accounts

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studenthome_backend/internals/features/accounts/accounts/model"
	"studenthome_backend/internals/seeds/utils"
)

type AccountSeed struct {
	GoogleID     string `json:"google_id" validate:"required,max=128"`
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	IsInstructor bool   `json:"is_instructor"`
}

func (s AccountSeed) ToModel() model.AccountModel {
	return model.AccountModel{
		AccountGoogleID:     strings.TrimSpace(s.GoogleID),
		AccountName:         strings.TrimSpace(s.Name),
		AccountEmail:        strings.ToLower(strings.TrimSpace(s.Email)),
		AccountIsInstructor: s.IsInstructor,
	}
}

// SeedAccountsFromJSON inserts accounts, skipping google ids already present.
func SeedAccountsFromJSON(db *gorm.DB, filePath string) error {
	seeds, err := utils.LoadJSONRecords[AccountSeed](filePath)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		log.Info().Str("file", filePath).Msg("no accounts to seed")
		return nil
	}

	rows := make([]model.AccountModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, s.ToModel())
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_google_id"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert accounts: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Int("read", len(seeds)).Msg("accounts seeded")
	return nil
}
