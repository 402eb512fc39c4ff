package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Credential is the OAuth2 token pair plus expiry used to authorize
// upstream calls. It is the only state that survives process restarts.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	Scope        string    `json:"scope,omitempty"`
}

// Expired reports whether the access token is within skew of its expiry.
// Credentials without a recorded expiry never report expired.
func (c *Credential) Expired(skew time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !time.Now().Add(skew).Before(c.ExpiresAt)
}

// Store persists the Credential across process restarts. Storage location
// and encryption are the store's concern; the manager only needs load,
// save and clear.
type Store interface {
	Load() (*Credential, error)
	Save(*Credential) error
	Clear() error
}

// credentialFile is the on-disk structure for FileStore.
type credentialFile struct {
	Version    int         `json:"version"`
	Credential *Credential `json:"credential,omitempty"`
}

// FileStore persists the credential as a JSON file with restricted
// permissions.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore creates a FileStore at the default location
// (~/.config/pipedrive-mcp/credentials.json).
func NewFileStore() *FileStore {
	return &FileStore{path: defaultCredentialPath()}
}

// NewFileStoreWithPath creates a FileStore at a custom path.
func NewFileStoreWithPath(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the credential file path.
func (s *FileStore) Path() string { return s.path }

func defaultCredentialPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "pipedrive-mcp", "credentials.json")
}

// Load reads the persisted credential. A missing file is not an error; it
// returns nil, matching a fresh unauthenticated install.
func (s *FileStore) Load() (*Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cf credentialFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return cf.Credential, nil
}

// Save writes the credential to disk with restricted permissions.
func (s *FileStore) Save(cred *Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(&credentialFile{Version: 1, Credential: cred}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the persisted credential.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
