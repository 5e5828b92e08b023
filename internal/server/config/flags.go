package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string   REST bind address (e.g. ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-k int      bcrypt cost
//	-l float    rate limit, requests per second per client
//	-b int      rate limit burst
//	-o string   comma separated CORS origins
//	-v string   log level
//
// Only these flags are picked out of os.Args (see flagx.FilterArgs), so -c
// and -env do not trip the parser. A malformed value panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-l", "-b", "-o", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.Float64Var(&config.RateLimitRPS, "l", config.RateLimitRPS, "rate limit (requests per second)")
	fs.IntVar(&config.RateLimitBurst, "b", config.RateLimitBurst, "rate limit burst")

	origins := fs.String("o", "", "CORS allowed origins (comma separated)")

	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "o":
			config.CORSAllowedOrigins = splitList(*origins)
		}
	})
}
