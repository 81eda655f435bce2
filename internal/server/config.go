package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/linqs/srinivasan-mlj20/pkg/utils"
)

type Config struct {
	Addr        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig builds the server config for addr ("host:port" or ":port").
// USE_HTTP2 and CORS_ORIGINS are read from the environment.
func LoadConfig(addr string) (*Config, error) {
	if err := validateAddr(addr); err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", addr, err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Addr:        addr,
		UseHttp2:    os.Getenv("USE_HTTP2") == "true",
		CorsOrigins: origins,
	}, nil
}

func validateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 0 || portNum > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	return nil
}
