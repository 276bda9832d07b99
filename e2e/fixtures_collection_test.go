//go:build e2e && unix

package main

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/http/httputil"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

// seedCSV has 23 rows so the default page size gives three pages. caterpie
// has no image and ditto no base experience.
const seedCSV = `Name,Base Experience,Height,Weight,Image URL
bulbasaur,64,7,69,http://img/1.png
ivysaur,142,10,130,http://img/2.png
venusaur,263,20,1000,http://img/3.png
charmander,62,6,85,http://img/4.png
charmeleon,142,11,190,http://img/5.png
charizard,267,17,905,http://img/6.png
squirtle,63,5,90,http://img/7.png
wartortle,142,10,225,http://img/8.png
blastoise,265,16,855,http://img/9.png
caterpie,39,3,29,
metapod,72,7,99,http://img/11.png
butterfree,198,11,320,http://img/12.png
weedle,39,3,32,http://img/13.png
kakuna,72,6,100,http://img/14.png
beedrill,178,10,295,http://img/15.png
pidgey,50,3,18,http://img/16.png
pidgeotto,122,11,300,http://img/17.png
pidgeot,216,15,395,http://img/18.png
rattata,51,3,35,http://img/19.png
raticate,145,7,185,http://img/20.png
pikachu,112,4,60,http://img/25.png
raichu,218,8,300,http://img/26.png
ditto,,3,40,
`

// collection runs pokeserve over a seeded sqlite file behind a recording
// proxy. URL is the proxy's address; the browser talks to it like to the
// real service.
type collection struct {
	*httptest.Server

	mu       sync.Mutex
	requests []url.Values
}

func newCollection(t *testing.T) *collection {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "pokemons.csv")
	if err := os.WriteFile(csvPath, []byte(seedCSV), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	addr := freeAddr(t)
	serve := exec.Command(serveBinPath, "-addr", addr, "-csv", csvPath)
	serve.Dir = dir
	serve.Env = append(os.Environ(),
		"HOME="+dir,
		"XDG_CONFIG_HOME="+filepath.Join(dir, ".config"),
		"POKESERVE_DSN="+filepath.Join(dir, "pokemons.db"),
		"GIN_MODE=release",
	)
	logFile, err := os.Create(filepath.Join(dir, "pokeserve.log"))
	if err != nil {
		t.Fatalf("create service log: %v", err)
	}
	serve.Stdout = logFile
	serve.Stderr = logFile
	if err := serve.Start(); err != nil {
		t.Fatalf("start pokeserve: %v", err)
	}

	c := &collection{}
	t.Cleanup(func() {
		if c.Server != nil {
			c.Close()
		}
		_ = serve.Process.Signal(syscall.SIGTERM)
		_ = serve.Wait()
		logFile.Close()
	})

	upstream := &url.URL{Scheme: "http", Host: addr}
	if !waitHealthy(upstream.String()+"/api/health", 10*time.Second) {
		t.Fatalf("pokeserve did not become healthy, see %s", logFile.Name())
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	c.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/pokemons") {
			c.mu.Lock()
			c.requests = append(c.requests, r.URL.Query())
			c.mu.Unlock()
		}
		proxy.ServeHTTP(w, r)
	}))
	return c
}

// freeAddr reserves a loopback port and releases it for the service
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func waitHealthy(healthURL string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(healthURL)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

// Requests returns a copy of the recorded query strings
func (c *collection) Requests() []url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]url.Values(nil), c.requests...)
}

// WaitForRequest waits until a recorded request satisfies pred
func (c *collection) WaitForRequest(pred func(url.Values) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		for _, q := range c.Requests() {
			if pred(q) {
				return true
			}
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// startBrowser creates a workspace and starts pokebrowse against c
func startBrowser(t *testing.T, tf *TUITestFramework, c *collection, args ...string) string {
	t.Helper()
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}

	base := []string{"-base-url", c.URL, "-log", fmt.Sprintf("%s/pokebrowse.log", workspace)}
	if err := tf.StartApp(append(base, args...)...); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	return workspace
}
