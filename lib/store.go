package lib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"
)

var (
	LAYOUTS_BKT  = []byte("layouts")
	PROJECTS_BKT = []byte("projects")
)

/*
	Store keeps named layout profiles and the profile last used per
	project, so repeated runs pick up the same geometry without flags.
*/
type Store struct {
	root string
	db   *bolt.DB
}

/*
	Create or open the store from root
*/
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(filepath.Join(root, "qetb.db"), 0600, nil)
	if err != nil {
		return nil, err
	}

	db.Update(func(tx *bolt.Tx) error {
		tx.CreateBucketIfNotExists(LAYOUTS_BKT)
		tx.CreateBucketIfNotExists(PROJECTS_BKT)

		return nil
	})

	return &Store{
		root: root,
		db:   db,
	}, nil
}

/*
	NewDefaultStore opens the per-user store.
*/
func NewDefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	return NewStore(filepath.Join(dir, "qetb"))
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveLayout(name string, layout Layout) error {
	data, err := Marshal(layout)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(LAYOUTS_BKT).Put([]byte(name), data)
	})
}

func (s *Store) GetLayout(name string) (Layout, error) {
	layout := DefaultLayout()

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(LAYOUTS_BKT).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("no layout profile named %q", name)
		}

		return Unmarshal(data, &layout)
	})

	return layout, err
}

func (s *Store) ListLayouts() ([]string, error) {
	names := []string{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(LAYOUTS_BKT).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})

	return names, err
}

func (s *Store) DeleteLayout(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(LAYOUTS_BKT).Delete([]byte(name))
	})
}

/*
	RememberProjectLayout associates a project file with a profile
	name; ProjectLayout returns it, or "" when the project is unknown.
*/
func (s *Store) RememberProjectLayout(project, layout string) error {
	key, err := Normalize(project)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(PROJECTS_BKT).Put([]byte(key), []byte(layout))
	})
}

func (s *Store) ProjectLayout(project string) string {
	key, err := Normalize(project)
	if err != nil {
		return ""
	}

	name := ""
	s.db.View(func(tx *bolt.Tx) error {
		name = string(tx.Bucket(PROJECTS_BKT).Get([]byte(key)))
		return nil
	})

	return name
}
