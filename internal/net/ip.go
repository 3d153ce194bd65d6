package net

import (
	"fmt"
	"log"
	"net"
)

// OutgoingIP finds the preferred local IP address for the host to share.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// no route out; use whatever interface is up
		ip := firstIPv4()
		if ip.IsLoopback() {
			log.Println("[SHARE] No suitable local IP found, link may only work on this machine.")
		}
		return ip.String()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// ShareLink builds the link viewers pass on the command line.
func ShareLink(scheme string, port int) string {
	return fmt.Sprintf("%s%s:%d", scheme, OutgoingIP(), port)
}
