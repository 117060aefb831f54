package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
)

type Repos struct {
	Profile  repos.ProfileRepo
	Contract repos.ContractRepo
	Job      repos.JobRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:  repos.NewProfileRepo(db, log),
		Contract: repos.NewContractRepo(db, log),
		Job:      repos.NewJobRepo(db, log),
	}
}
