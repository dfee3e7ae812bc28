package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/missionMeteora/mandrill"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	if c.Admin.Email == "" || c.Admin.Pass == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	ServerURL string `json:"serverUrl"`
	APIPath   string `json:"apiPath"`

	Sandbox bool `json:"sandbox"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	TokenPurge time.Duration `json:"tokenPurge"` // In hours

	// Seeded at startup if the user bucket is empty.
	Admin struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Pass  string `json:"pass"`
	} `json:"admin"`

	Mandrill struct {
		APIKey     string `json:"apiKey"`
		SubAccount string `json:"subAccount"`
		From       string `json:"from"`
		FromName   string `json:"fromName"`
	} `json:"mandrill"`

	// Remote mirror hit by the legacy sync path. Optional.
	Sync struct {
		URL string `json:"url"`
		Key string `json:"key"`
	} `json:"sync"`

	Bucket struct {
		Store  string `json:"store"`
		Legacy string `json:"legacy"`
		User   string `json:"user"`
		Login  string `json:"login"`
		Token  string `json:"token"`
	} `json:"bucket"`
}

// AllBuckets returns every bucket the server expects to exist, the index
// bucket included.
func (c *Config) AllBuckets() []string {
	return []string{
		"index",
		c.Bucket.Store,
		c.Bucket.Legacy,
		c.Bucket.User,
		c.Bucket.Login,
		c.Bucket.Token,
	}
}

func (c *Config) MailClient() *mandrill.Client {
	if c.Mandrill.APIKey == "" {
		return nil
	}
	return mandrill.New(c.Mandrill.APIKey, c.Mandrill.SubAccount, c.Mandrill.From, c.Mandrill.FromName)
}
