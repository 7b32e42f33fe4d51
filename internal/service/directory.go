package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"one-on-one-backend/internal/config"
	apperrors "one-on-one-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryPerson is a person entry found in the corporate directory
type DirectoryPerson struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	UID         string `json:"uid"`
}

// ldapClient is the subset of *ldap.Conn the directory search uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialURL("ldaps://"+addr, ldap.DialWithTLSConfig(cfg))
}

var directoryAttributes = []string{"displayName", "givenName", "sn", "mail", "uid"}

// DirectoryService searches people in LDAP
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// Search finds people whose common name, display name or mail starts with query
func (s *DirectoryService) Search(query string) ([]DirectoryPerson, error) {
	if !s.cfg.LDAPConfigured() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "search query is required")
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	q := ldap.EscapeFilter(query)
	filter := fmt.Sprintf("(&(objectClass=person)(|(cn=%s*)(displayName=%s*)(mail=%s*)))", q, q, q)
	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		50,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		directoryAttributes,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search directory: %w", err)
	}

	out := make([]DirectoryPerson, 0, len(res.Entries))
	for _, e := range res.Entries {
		mail := e.GetAttributeValue("mail")
		if mail == "" {
			continue
		}
		out = append(out, DirectoryPerson{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			Surname:     e.GetAttributeValue("sn"),
			Email:       strings.ToLower(mail),
			UID:         e.GetAttributeValue("uid"),
		})
	}
	return out, nil
}
