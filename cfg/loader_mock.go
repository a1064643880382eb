package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:    "geeklink-ranking",
			Version: "0.0.1",
		},

		// Server
		Server: Server{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15,
			WriteTimeout: 60,
		},

		// Mysql
		Mysql: Mysql{
			Host:                  "127.0.0.1",
			Password:              "root",
			Username:              "root",
			Port:                  "3306",
			Database:              "geeklink",
			MaxIdleConnection:     10,
			MaxOpenConnection:     100,
			MaxLifeTimeConnection: 3600,
		},

		// GithubApi
		GithubApi: GithubApi{
			GraphqlUrl:        "https://api.github.com/graphql",
			RequestsPerSecond: 10,
			ThrottleDelay:     200,
			FetchTimeoutSec:   30,
		},

		// QiitaApi
		QiitaApi: QiitaApi{
			ItemsUrl:          "https://qiita.com/api/v2/items",
			RequestsPerSecond: 10,
			ThrottleDelay:     200,
			FetchTimeoutSec:   30,
		},

		// Kafka
		Kafka: Kafka{
			Enabled: false,
			Brokers: []string{"127.0.0.1:9092"},
			Topic:   "ranking-refreshed",
		},

		// Ranking
		Ranking: Ranking{
			TopN:            5,
			InsertBatchSize: 100,
		},
	}, nil
}
