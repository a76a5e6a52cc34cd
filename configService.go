package main

import (
	"crypto/subtle"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"dscheirer.com/tftclock/sevenseg"
)

const dConfigSleep = 100 * time.Millisecond

type configService interface {
	launch(handler *apiHandler, addr string)
	stop()
}

type configResponse struct {
	Response string          `json:"response"`
	Error    string          `json:"error,omitempty"`
	Status   *statusSnapshot `json:"status,omitempty"`
}

type configSvcMsg struct {
	secret string
}

// apiHandler - settings for the thing that handles HTTP requests
type apiHandler struct {
	rt     runtimeConfig
	mu     sync.Mutex
	secret string
	user   string
	realm  string
}

// newHandler - create a new API handler, with a throwaway secret unless
// one is configured
func newHandler(rt runtimeConfig) *apiHandler {
	secret := rt.settings.GetString(sHTTPSecret)
	if secret == "" {
		secret = rt.clock.Now().String()
	}
	return &apiHandler{
		rt:     rt,
		secret: secret,
		user:   rt.settings.GetString(sHTTPUser),
		realm:  "tftclock",
	}
}

// the server goroutines read the secret while the comms loop replaces it
func (m *apiHandler) getSecret() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.secret
}

func (m *apiHandler) setSecret(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secret = s
}

// BasicAuth - provide a middleware to authenticate users
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.getSecret())) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *apiHandler) getStatus() configResponse {
	snap := m.rt.status.get()
	return configResponse{Response: "OK", Status: &snap}
}

func writeAnswer(w http.ResponseWriter, code int, cr configResponse) {
	output, _ := json.Marshal(cr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(output)
}

func writeError(w http.ResponseWriter, err error) {
	writeAnswer(w, http.StatusBadRequest, configResponse{Response: "BAD", Error: err.Error()})
}

// post hands an effect to the display loop without blocking the request
func (m *apiHandler) post(w http.ResponseWriter, e displayEffect) {
	select {
	case m.rt.comms.effects <- e:
		writeAnswer(w, http.StatusOK, configResponse{Response: "OK"})
	default:
		writeAnswer(w, http.StatusServiceUnavailable, configResponse{Response: "BAD", Error: "display busy"})
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	data, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, 4096))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return data, nil
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, http.StatusOK, m.getStatus())
}

// apiColors takes {"on": "0xF800", "off": "#200000"}, either may be left out
func (m *apiHandler) apiColors(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	c := colorScheme{on: m.rt.settings.GetColor(sOnColor), off: m.rt.settings.GetColor(sOffColor)}
	if snap := m.rt.status.get(); snap.OnColor != "" {
		// keep whatever was set last
		c.on, _ = parseColor(snap.OnColor)
		c.off, _ = parseColor(snap.OffColor)
	}
	for _, key := range []string{"on", "off"} {
		v, err := jsonparser.GetString(data, key)
		if err == jsonparser.KeyPathNotFoundError {
			continue
		}
		var col sevenseg.Color
		if err == nil {
			col, err = parseColor(v)
		}
		if err != nil {
			writeError(w, errors.Wrapf(err, "color %s", key))
			return
		}
		if key == "on" {
			c.on = col
		} else {
			c.off = col
		}
	}
	m.post(w, colorsEffect(c))
}

// apiGame starts a new chess game, {"base": "5m", "increment": "3s"}
func (m *apiHandler) apiGame(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	rules := settingsRules(m.rt.settings)
	for key, dst := range map[string]*time.Duration{"base": &rules.Base, "increment": &rules.Increment} {
		v, err := jsonparser.GetString(data, key)
		if err == jsonparser.KeyPathNotFoundError {
			continue
		}
		var d time.Duration
		if err == nil {
			d, err = time.ParseDuration(v)
		}
		if err == nil && d < 0 {
			err = errors.New("negative duration")
		}
		if err != nil {
			writeError(w, errors.Wrapf(err, "game %s", key))
			return
		}
		*dst = d
	}
	if rules.Base <= 0 {
		writeError(w, errors.New("game base time must be positive"))
		return
	}
	m.post(w, newGameEffect(rules))
}

// apiCounter sets the counter layout, {"value": 42}
func (m *apiHandler) apiCounter(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := jsonparser.GetInt(data, "value")
	if err != nil {
		writeError(w, errors.Wrap(err, "counter value"))
		return
	}
	if v < 0 || v > 999 {
		writeError(w, errors.Errorf("counter value %d out of range 0-999", v))
		return
	}
	m.post(w, counterEffect(int(v)))
}

// apiDebug turns the ascii dumps of the displays on or off, {"on": true}
func (m *apiHandler) apiDebug(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	on, err := jsonparser.GetBoolean(data, "on")
	if err != nil {
		writeError(w, errors.Wrap(err, "debug on"))
		return
	}
	m.post(w, toggleDebugDump(on))
}

func (m *apiHandler) apiError(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, http.StatusNotFound, configResponse{Response: "BAD", Error: "no such api"})
}

func startConfigService(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "ConfigService"}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runConfigService(rt)
	}()
}

func runConfigService(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("exiting runConfigService")
	}()

	handler := newHandler(rt)

	rt.configService.launch(handler, rt.settings.GetString(sHTTPAddr))

	rt.logger.Println("starting config service comms loop")
	comms := rt.comms

	// comms loop, listen for secrets
	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from config service")
			// stop the server
			rt.configService.stop()
			return
		case msg := <-comms.configSvc:
			// we only accept secret strings
			rt.logger.Println("Got a new secret")
			handler.setSecret(msg.secret)
		default:
			rt.clock.Sleep(dConfigSleep)
		}
	}
}
