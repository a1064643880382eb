package cfg

type (
	App struct {
		Name    string
		Version string
	}

	Server struct {
		Host         string
		Port         string
		ReadTimeout  int
		WriteTimeout int
	}

	Mysql struct {
		Host                  string
		Port                  string
		Username              string
		Password              string
		Database              string
		MaxIdleConnection     int
		MaxOpenConnection     int
		MaxLifeTimeConnection int
	}

	GithubApi struct {
		GraphqlUrl        string
		RequestsPerSecond int
		ThrottleDelay     int
		FetchTimeoutSec   int
	}

	QiitaApi struct {
		ItemsUrl          string
		RequestsPerSecond int
		ThrottleDelay     int
		FetchTimeoutSec   int
	}

	Kafka struct {
		Enabled bool
		Brokers []string
		Topic   string
	}

	Ranking struct {
		TopN            int
		InsertBatchSize int
	}
)

type Config struct {
	App       App
	Server    Server
	Mysql     Mysql
	GithubApi GithubApi
	QiitaApi  QiitaApi
	Kafka     Kafka
	Ranking   Ranking
}
