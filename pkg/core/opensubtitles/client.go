package opensubtitles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/angelospk/opensubtitles-xmlrpc/internal/constants"
	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
	"github.com/sirupsen/logrus"
)

// Subtitle language ids accepted by SearchSubtitles (ISO 639-2/B).
const (
	LanguageEnglish = "eng"
	LanguageRussian = "rus"
)

// Config holds the configuration for the XML-RPC client.
type Config struct {
	Endpoint  string            // Optional: defaults to constants.DefaultEndpoint
	Language  string            // Optional: interface language sent with LogIn, defaults to "en"
	UserAgent string            // Optional: defaults to the service's test user agent
	Transport http.RoundTripper // Optional: used by the kolo/xmlrpc client
	Logger    *logrus.Logger    // Optional: defaults to a logger that discards output
}

// Client talks to the OpenSubtitles XML-RPC API.
//
// A Client keeps the session token between calls and is not safe for
// concurrent use; give each goroutine its own Client.
type Client struct {
	caller    Caller
	closer    io.Closer
	token     string
	language  string
	userAgent string
	logger    *logrus.Logger
}

// NewClient creates a Client backed by a kolo/xmlrpc connection to cfg.Endpoint.
func NewClient(cfg Config) (*Client, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}
	rpcClient, err := NewXmlRpcCaller(endpoint, cfg.Transport)
	if err != nil {
		return nil, err
	}
	c := NewClientWithCaller(rpcClient, cfg)
	c.closer = rpcClient
	return c, nil
}

// NewClientWithCaller creates a Client that issues its calls through caller.
// cfg.Endpoint and cfg.Transport are ignored.
func NewClientWithCaller(caller Caller, cfg Config) *Client {
	language := cfg.Language
	if language == "" {
		language = constants.DefaultLanguage
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Client{
		caller:    caller,
		language:  language,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Token returns the session token, "" before a successful Login.
func (c *Client) Token() string {
	return c.token
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Close closes the underlying XML-RPC client connection.
func (c *Client) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Login authenticates the user and stores the returned token.
// It returns "" without error if the service answered 200 without a token.
func (c *Client) Login(username, password string) (string, error) {
	resp, err := c.call("LogIn", username, password, c.language, c.userAgent)
	if err != nil {
		return "", err
	}
	value, err := resp.Field("token")
	if err != nil {
		return "", err
	}
	token, _ := value.(string)
	if token != "" {
		c.token = token
		c.logger.WithField("token", maskToken(token)).Info("Logged in to OpenSubtitles")
	}
	return token, nil
}

// Logout ends the session. It reports whether the status contained "200"
// and, unlike most methods, does not map other statuses to errors.
// The stored token is left in place.
func (c *Client) Logout() (bool, error) {
	resp, err := c.call("LogOut", c.token)
	if err != nil {
		return false, err
	}
	return resp.statusOK()
}

// SubtitleInfo is one entry of a SearchSubtitles result
// (IDSubtitleFile, SubFileName, SubLanguageID, MovieName, ...).
type SubtitleInfo map[string]interface{}

// SearchSubtitles searches with a single filter built from imdbID (when not
// empty), languages joined as sublanguageid and extra. Keys in extra override
// the built-in ones. A nil languages searches English; a non-nil empty slice
// sends no language filter. A nil result means the service returned no data.
func (c *Client) SearchSubtitles(imdbID string, languages []string, extra map[string]interface{}) ([]SubtitleInfo, error) {
	filter := make(map[string]interface{})
	if imdbID != "" {
		filter["imdbid"] = imdbID
	}
	if languages == nil {
		languages = []string{LanguageEnglish}
	}
	if len(languages) > 0 {
		filter["sublanguageid"] = strings.Join(languages, ",")
	}
	for k, v := range extra {
		filter[k] = v
	}

	resp, err := c.call("SearchSubtitles", c.token, []interface{}{filter})
	if err != nil {
		return nil, err
	}
	data, err := resp.Field("data")
	if err != nil {
		return nil, err
	}

	// The service answers data=false when nothing matched.
	entries, ok := data.([]interface{})
	if !ok {
		if data == nil || data == false {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected SearchSubtitles data type: %T: %w", data, coreErrors.ErrMalformedResponse)
	}
	results := make([]SubtitleInfo, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected SearchSubtitles entry type: %T: %w", entry, coreErrors.ErrMalformedResponse)
		}
		results = append(results, SubtitleInfo(m))
	}
	return results, nil
}

// TryUploadSubtitles reports whether the subtitle described by params is
// already in the database (alreadyindb == 1).
func (c *Client) TryUploadSubtitles(params map[string]interface{}) (bool, error) {
	resp, err := c.call("TryUploadSubtitles", c.token, params)
	if err != nil {
		return false, err
	}
	value, err := resp.Field("alreadyindb")
	if err != nil {
		return false, err
	}
	n, ok := asInt(value)
	return ok && n == 1, nil
}

// UploadSubtitles uploads a subtitle and returns the URL of its page on the
// site, or "" when the service returned no data.
func (c *Client) UploadSubtitles(params map[string]interface{}) (string, error) {
	resp, err := c.call("UploadSubtitles", c.token, params)
	if err != nil {
		return "", err
	}
	value, err := resp.Field("data")
	if err != nil {
		return "", err
	}
	url, _ := value.(string)
	return url, nil
}

// NoOperation pings the service to keep the session alive. The service drops
// sessions idle for 15 minutes. Like Logout it only checks for "200".
func (c *Client) NoOperation() (bool, error) {
	resp, err := c.call("NoOperation", c.token)
	if err != nil {
		return false, err
	}
	return resp.statusOK()
}

// KeepAlive calls NoOperation every interval until ctx is done or a ping
// fails. A zero interval uses a margin below the session timeout.
// It blocks the calling goroutine.
func (c *Client) KeepAlive(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = constants.SessionTimeout - time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alive, err := c.NoOperation()
			if err != nil {
				return err
			}
			if !alive {
				return coreErrors.ErrNoSession
			}
			c.logger.Debug("Session keep-alive ok")
		}
	}
}

// AutoUpdate returns the program's update info (version, url_windows,
// url_linux, comments) or nil when the status is not 200. Errors are only
// returned for transport failures.
func (c *Client) AutoUpdate(program string) (Response, error) {
	resp, err := c.call("AutoUpdate", program)
	if err != nil {
		return nil, err
	}
	ok, err := resp.statusOK()
	if err != nil || !ok {
		return nil, err
	}
	return resp, nil
}

// SearchMoviesOnIMDB returns the raw envelope without status checks.
func (c *Client) SearchMoviesOnIMDB(query string) (Response, error) {
	return c.call("SearchMoviesOnIMDB", c.token, query)
}

// DownloadedSubtitle is one decoded entry of a DownloadSubtitles response.
// ID is the entry's idsubtitlefile and is empty when the service omits it.
type DownloadedSubtitle struct {
	ID      string
	Content []byte
}

// DownloadSubtitles downloads up to 20 subtitle files by IDSubtitleFile and
// returns their decoded contents in response order.
func (c *Client) DownloadSubtitles(fileIDs ...string) ([][]byte, error) {
	files, err := c.DownloadSubtitleFiles(fileIDs...)
	if err != nil {
		return nil, err
	}
	subs := make([][]byte, len(files))
	for i, f := range files {
		subs[i] = f.Content
	}
	return subs, nil
}

// DownloadSubtitleFiles is DownloadSubtitles keeping the id the service
// reported for each entry. The service may return fewer entries than
// requested, in any order.
func (c *Client) DownloadSubtitleFiles(fileIDs ...string) ([]DownloadedSubtitle, error) {
	if len(fileIDs) > constants.MaxDownloadIDs {
		return nil, coreErrors.InvalidArgument("maximum number of subtitle ids is %d, given %d", constants.MaxDownloadIDs, len(fileIDs))
	}
	ids := make([]interface{}, len(fileIDs))
	for i, id := range fileIDs {
		ids[i] = id
	}

	resp, err := c.call("DownloadSubtitles", c.token, ids)
	if err != nil {
		return nil, err
	}
	data, err := resp.Field("data")
	if err != nil {
		return nil, err
	}
	entries, ok := data.([]interface{})
	if !ok {
		if data == nil || data == false {
			return []DownloadedSubtitle{}, nil
		}
		return nil, fmt.Errorf("unexpected DownloadSubtitles data type: %T: %w", data, coreErrors.ErrMalformedResponse)
	}

	files := make([]DownloadedSubtitle, 0, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected DownloadSubtitles entry %d type: %T: %w", i, entry, coreErrors.ErrMalformedResponse)
		}
		encoded, ok := m["data"].(string)
		if !ok {
			return nil, fmt.Errorf("DownloadSubtitles entry %d has no data string: %w", i, coreErrors.ErrMalformedResponse)
		}
		content, err := DecodeGzipBase64(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode subtitle %v: %w", m["idsubtitlefile"], err)
		}
		var id string
		if raw, ok := m["idsubtitlefile"]; ok && raw != nil {
			id = fmt.Sprint(raw)
		}
		files = append(files, DownloadedSubtitle{ID: id, Content: content})
	}
	c.logger.WithField("count", len(files)).Debug("Downloaded subtitles")
	return files, nil
}
