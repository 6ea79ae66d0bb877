// Package validate provides input validation shared by labd and labctl.
//
// Everything is built on go-playground/validator tags so the CLIs, the
// server config and the typed lab records report errors the same way.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress is a validated "host:port" pair for binding a listener.
type NetworkAddress struct {
	Host string `validate:"omitempty,ip"`
	Port int    `validate:"min=0,max=65535"`
}

// String returns the address in "host:port" form.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses a listen address. An empty host (":8080") means
// all interfaces, matching net.Listen.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	host, port, err := splitAddress(addr)
	if err != nil {
		return nil, err
	}

	netAddr := &NetworkAddress{Host: host, Port: port}
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ServerAddress is a validated "host:port" pair a client dials. Unlike a
// bind address the host may be a name and the port must be set.
type ServerAddress struct {
	Host string `validate:"required,ip|hostname_rfc1123"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the address in "host:port" form.
func (sa ServerAddress) String() string {
	return net.JoinHostPort(sa.Host, strconv.Itoa(sa.Port))
}

// ParseServerAddress parses an address such as "127.0.0.1:8080" or
// "labs.local:8080".
func ParseServerAddress(addr string) (*ServerAddress, error) {
	host, port, err := splitAddress(addr)
	if err != nil {
		return nil, err
	}

	srvAddr := &ServerAddress{Host: host, Port: port}
	if err := validate.Struct(srvAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return srvAddr, nil
}

func splitAddress(addr string) (string, int, error) {
	if addr == "" {
		return "", 0, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	return host, port, nil
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("http://127.0.0.1:8080/labs/lab5", "required,url")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct using its `validate` tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
