package main

import (
	_ "embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 8080
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnvInt("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnvInt("SSH_PORT", 2222)

	addr := net.JoinHostPort(host, fmt.Sprint(port))
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, newHandler(logger, sshHost, sshPort)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

type pageData struct {
	SSHHost string
	SSHPort int
}

func newHandler(logger *log.Logger, sshHost string, sshPort int) http.Handler {
	data := pageData{SSHHost: sshHost, SSHPort: sshPort}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})
	return mux
}
