package sessionstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/genesi-finance/genesi-client/internal/model"
)

const userFile = "user.json"

// FileStore keeps the session user as user.json under a config directory.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at dir. The directory is created lazily
// on the first Save.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// DefaultDir resolves the config directory the way XDG expects:
// $XDG_CONFIG_HOME/genesi, falling back to ~/.config/genesi.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "genesi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "genesi")
}

func (s *FileStore) path() string { return filepath.Join(s.dir, userFile) }

// Load reads the stored user. A malformed file is removed and reported as
// absent, so a corrupt slot can never block startup.
func (s *FileStore) Load() (*model.User, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil || u.ID == "" {
		_ = os.Remove(s.path())
		return nil, nil
	}
	return &u, nil
}

func (s *FileStore) Save(u *model.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
