package opensubtitles

import (
	"errors"
	"fmt"
	"net/http"
	"net/rpc"

	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
	xmlrpc "github.com/kolo/xmlrpc"
	"github.com/sirupsen/logrus"
)

// Caller issues one named XML-RPC call with positional arguments.
// *xmlrpc.Client satisfies it.
type Caller interface {
	Call(serviceMethod string, args interface{}, reply interface{}) error
}

// NewXmlRpcCaller creates the kolo/xmlrpc client for endpoint. A nil
// transport uses http.DefaultTransport.
func NewXmlRpcCaller(endpoint string, transport http.RoundTripper) (*xmlrpc.Client, error) {
	client, err := xmlrpc.NewClient(endpoint, transport)
	if err != nil {
		return nil, fmt.Errorf("error creating XML-RPC client: %w", err)
	}
	return client, nil
}

// call invokes method and returns the decoded response envelope.
func (c *Client) call(method string, args ...interface{}) (Response, error) {
	if args == nil {
		args = []interface{}{}
	}

	var raw interface{}
	if err := c.caller.Call(method, args, &raw); err != nil {
		if errors.Is(err, rpc.ErrShutdown) {
			return nil, fmt.Errorf("xmlrpc %s connection shutdown: %w", method, err)
		}
		var fault xmlrpc.FaultError
		if errors.As(err, &fault) {
			return nil, fmt.Errorf("xmlrpc %s fault %d (%s): %w", method, fault.Code, fault.String, err)
		}
		return nil, fmt.Errorf("xmlrpc %s call failed: %w", method, err)
	}

	envelope, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected %s response type: %T: %w", method, raw, coreErrors.ErrMalformedResponse)
	}
	resp := Response(envelope)

	c.logger.WithFields(logrus.Fields{
		"method":  method,
		"token":   maskToken(c.token),
		"status":  resp.Status(),
		"seconds": resp["seconds"],
	}).Debug("xmlrpc call completed")

	return resp, nil
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) > 8 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	return token
}
