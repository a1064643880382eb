package model

import (
	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

type Model struct {
	Config *cfg.Config `gorm:"-"`
	Logger log.Logger  `gorm:"-"`
	Mysql  *db.Mysql   `gorm:"-"`
}
