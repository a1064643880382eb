package model

import (
	"context"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// Account is a user eligible for one ranking source: the identifier plus
// whatever external username/credential that source needs.
type Account struct {
	UserID      string
	Username    string
	AccessToken string
}

// User maps the shared users table. The table is owned by the main
// application; this service only reads it, except for the online flag reset.
type User struct {
	Model
	UserID            string    `json:"user_id" gorm:"column:user_id;primaryKey;type:varchar(36)"`
	Name              string    `json:"name" gorm:"column:name;type:varchar(255)"`
	Github            *string   `json:"github" gorm:"column:github;type:varchar(255)"`
	Qiita             *string   `json:"qiita" gorm:"column:qiita;type:varchar(255)"`
	GithubAccessToken *string   `json:"-" gorm:"column:github_access_token;type:varchar(255)"`
	QiitaAccessToken  *string   `json:"-" gorm:"column:qiita_access_token;type:varchar(255)"`
	Online            bool      `json:"online" gorm:"column:online;default:false"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func NewUser(config *cfg.Config, logger log.Logger, db *db.Mysql) (*User, error) {
	user := &User{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return user, nil
}

func (u *User) TableName() string {
	return "users"
}

// GithubLinked returns the users holding a GitHub access token, in the
// order the database enumerates them. That order is the tie-break order
// for equal ranking scores.
func (u *User) GithubLinked(ctx context.Context) ([]Account, error) {
	db, err := u.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var users []User
	if err := db.WithContext(ctx).
		Where("github_access_token IS NOT NULL").
		Find(&users).Error; err != nil {
		u.Logger.Error(ctx, "Failed to list github-linked users: %v", err)
		return nil, err
	}

	accounts := make([]Account, 0, len(users))
	for _, user := range users {
		username := ""
		if user.Github != nil {
			username = *user.Github
		}
		token := ""
		if user.GithubAccessToken != nil {
			token = *user.GithubAccessToken
		}
		accounts = append(accounts, Account{UserID: user.UserID, Username: username, AccessToken: token})
	}
	return accounts, nil
}

// QiitaLinked returns the users holding a Qiita access token.
func (u *User) QiitaLinked(ctx context.Context) ([]Account, error) {
	db, err := u.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var users []User
	if err := db.WithContext(ctx).
		Where("qiita_access_token IS NOT NULL").
		Find(&users).Error; err != nil {
		u.Logger.Error(ctx, "Failed to list qiita-linked users: %v", err)
		return nil, err
	}

	accounts := make([]Account, 0, len(users))
	for _, user := range users {
		token := ""
		if user.QiitaAccessToken != nil {
			token = *user.QiitaAccessToken
		}
		accounts = append(accounts, Account{UserID: user.UserID, AccessToken: token})
	}
	return accounts, nil
}

// All returns every registered user. The activity ranking needs no
// external credential, so nobody is filtered out.
func (u *User) All(ctx context.Context) ([]Account, error) {
	db, err := u.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var users []User
	if err := db.WithContext(ctx).Find(&users).Error; err != nil {
		u.Logger.Error(ctx, "Failed to list users: %v", err)
		return nil, err
	}

	accounts := make([]Account, 0, len(users))
	for _, user := range users {
		accounts = append(accounts, Account{UserID: user.UserID})
	}
	return accounts, nil
}

// ResetOnline flips every online user back to offline. Runs as a side task
// of the daily refresh.
func (u *User) ResetOnline(ctx context.Context) (int64, error) {
	db, err := u.Mysql.Db()
	if err != nil {
		return 0, err
	}

	result := db.WithContext(ctx).
		Model(&User{}).
		Where("online = ?", true).
		Update("online", false)
	if result.Error != nil {
		u.Logger.Error(ctx, "Failed to reset online users: %v", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
