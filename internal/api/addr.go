package api

import (
	"fmt"
	"net"
)

// LocalURL is the address other machines on the LAN can use to reach the
// API on port.
func LocalURL(port string) string {
	return fmt.Sprintf("http://%s/", net.JoinHostPort(outgoingIP(), port))
}

// outgoingIP finds the preferred local IP address. Dialing UDP sends no
// packets; it only selects a route.
func outgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return localIPFallback()
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return localIPFallback()
}

// localIPFallback is used on networks without internet access.
func localIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	return "127.0.0.1"
}
