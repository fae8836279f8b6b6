package catalog

import (
	"strings"

	"github.com/Elizabethomito/eventboard/internal/models"
)

// Login sets the session to the user whose email and password both match
// exactly. On failure the session is left as it was.
func (c *Catalog) Login(email, password string) (models.User, error) {
	c.mu.Lock()
	var found *models.User
	for i := range c.users {
		if c.users[i].Email == email && c.users[i].Password == password {
			found = &c.users[i]
			break
		}
	}
	if found == nil || email == "" {
		c.mu.Unlock()
		return models.User{}, ErrAuthenticationFailed
	}
	u := *found
	c.session = &u
	ch := c.commit(ChangeSession, 0)
	c.mu.Unlock()

	c.publish(ch)
	return u, nil
}

// Signup creates an account and logs it in. Emails are unique by exact,
// case-sensitive comparison.
func (c *Catalog) Signup(email, password string, role models.Role) (models.User, error) {
	var missing []string
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return models.User{}, &ValidationError{Missing: missing}
	}
	if !role.Valid() {
		return models.User{}, invalid("role")
	}

	c.mu.Lock()
	for _, u := range c.users {
		if u.Email == email {
			c.mu.Unlock()
			return models.User{}, ErrDuplicateEmail
		}
	}
	u := models.User{
		ID:       c.nextUserID,
		Email:    email,
		Password: password,
		Role:     role,
	}
	c.nextUserID++
	c.users = append(c.users, u)
	session := u
	c.session = &session
	ch := c.commit(ChangeSession, 0)
	c.mu.Unlock()

	c.publish(ch)
	return u, nil
}

// Logout clears the session. It always succeeds.
func (c *Catalog) Logout() {
	c.mu.Lock()
	c.session = nil
	ch := c.commit(ChangeSession, 0)
	c.mu.Unlock()
	c.publish(ch)
}

// CurrentUser returns the logged-in user, if any.
func (c *Catalog) CurrentUser() (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return models.User{}, false
	}
	return *c.session, true
}

// ParseRole validates a raw role value from a signup form.
func ParseRole(raw string) (models.Role, error) {
	r := models.Role(raw)
	if !r.Valid() {
		return "", invalid("role")
	}
	return r, nil
}
