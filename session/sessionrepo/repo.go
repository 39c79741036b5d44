package sessionrepo

import "github.com/SChristophS/StoryMagic/session"

// Repo stores one wizard session per visit ID. Sessions live only in
// the process; a lost visit means the wizard starts over with the auth
// token restored from its durable cookie.
type Repo interface {
	Upsert(visitID string, sess *session.Session) error
	Get(visitID string) (*session.Session, error)
	Delete(visitID string) error
}
