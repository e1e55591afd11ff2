package address

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const DefaultHost = "0.0.0.0"

// Address is a validated host:port pair the server binds to.
type Address struct {
	Host string
	Port uint16
}

// Parse validates a "host:port" string. A bare ":port" binds to all interfaces.
func Parse(addr string) (Address, error) {
	colon := strings.LastIndexByte(addr, ':')
	if colon == -1 {
		return Address{}, fmt.Errorf("no port specified: %s", addr)
	}

	host := addr[:colon]
	if len(host) == 0 {
		host = DefaultHost
	}

	port, err := strconv.ParseUint(addr[colon+1:], 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("bad port: %s", addr[colon+1:])
	}

	return Address{Host: host, Port: uint16(port)}, nil
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.FormatUint(uint64(a.Port), 10))
}
