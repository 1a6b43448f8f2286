// Package blpapi parses BLPAPI service names. Services are URI-styled and
// always take the form "//blp/<servicename>" (BLPAPI Core User Guide).
//
// Like the figi package this is pure domain code: no I/O, no context, safe
// for unlimited concurrent use.
package blpapi

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies the service namespace. Only the Bloomberg namespace
// exists today.
type Scheme string

const SchemeBLP Scheme = "blp"

// Provider identifies a concrete market-data service within a scheme.
type Provider string

const (
	ProviderRefData Provider = "refdata"
	ProviderMktData Provider = "mktdata"
	ProviderMktBar  Provider = "mktbar"
)

// knownProviders is the closed set of services this module understands.
var knownProviders = map[Provider]struct{}{
	ProviderRefData: {},
	ProviderMktData: {},
	ProviderMktBar:  {},
}

var (
	// ErrInvalidServiceForm indicates the input is not "//<scheme>/<provider>".
	ErrInvalidServiceForm = errors.New("service name must have the form //blp/<servicename>")
	// ErrUnknownScheme indicates a scheme other than "blp".
	ErrUnknownScheme = errors.New("unknown service scheme")
	// ErrUnknownProvider indicates a service name outside the known set.
	ErrUnknownProvider = errors.New("unknown service provider")
)

// Service is a validated BLPAPI service name.
//
// The zero value is not valid; construct via ParseService.
type Service struct {
	scheme   Scheme
	provider Provider
}

// ParseService validates a full service name such as "//blp/refdata".
// Matching is exact: no case folding, no trailing input.
func ParseService(s string) (Service, error) {
	rest, ok := strings.CutPrefix(s, "//")
	if !ok {
		return Service{}, fmt.Errorf("%w: %q", ErrInvalidServiceForm, s)
	}
	scheme, provider, ok := strings.Cut(rest, "/")
	if !ok || scheme == "" || provider == "" || strings.Contains(provider, "/") {
		return Service{}, fmt.Errorf("%w: %q", ErrInvalidServiceForm, s)
	}
	if Scheme(scheme) != SchemeBLP {
		return Service{}, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	p := Provider(provider)
	if _, known := knownProviders[p]; !known {
		return Service{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	return Service{scheme: SchemeBLP, provider: p}, nil
}

// MustParseService parses s, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParseService(s string) Service {
	svc, err := ParseService(s)
	if err != nil {
		panic(err)
	}
	return svc
}

// Scheme returns the service scheme.
func (s Service) Scheme() Scheme {
	return s.scheme
}

// Provider returns the service provider.
func (s Service) Provider() Provider {
	return s.provider
}

// String returns the canonical "//blp/<servicename>" form.
func (s Service) String() string {
	return fmt.Sprintf("//%s/%s", s.scheme, s.provider)
}

// IsZero returns true if this is the zero value (uninitialized).
func (s Service) IsZero() bool {
	return s.scheme == "" && s.provider == ""
}
