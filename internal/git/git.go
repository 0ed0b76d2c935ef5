// Package git wraps the git binary for vault version control. The vault is
// the repository root; the adapter only stages and commits the working tree
// as-is and never rewrites note content.
package git

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepo is returned by operations that require an existing repository.
var ErrNotRepo = errors.New("not a git repository")

const readmeContent = "# Notes Vault\n\nThis vault contains your notes managed by the terminal notes app.\n"

// Client executes git commands against a single repository directory.
type Client struct {
	dir    string
	logger *slog.Logger
}

// NewClient creates a client rooted at the given directory.
func NewClient(dir string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{dir: dir, logger: logger}
}

// Dir returns the repository root.
func (c *Client) Dir() string {
	return c.dir
}

func (c *Client) run(args ...string) (string, error) {
	c.logger.Debug("executing git", "args", args, "dir", c.dir)

	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, fmt.Errorf("git %s failed: %w: %s", args[0], err, output)
	}

	return output, nil
}

// IsRepo reports whether the directory holds git metadata.
func (c *Client) IsRepo() bool {
	info, err := os.Stat(filepath.Join(c.dir, ".git"))
	return err == nil && info.IsDir()
}

// Init initializes the repository with a placeholder identity and an initial
// README commit. Calling it on an existing repository is a no-op.
func (c *Client) Init() error {
	if c.IsRepo() {
		return nil
	}

	if _, err := c.run("init"); err != nil {
		return err
	}
	if _, err := c.run("config", "user.name", "Notes Vault"); err != nil {
		return err
	}
	if _, err := c.run("config", "user.email", "vault@local"); err != nil {
		return err
	}

	readmePath := filepath.Join(c.dir, "README.md")
	if _, err := os.Stat(readmePath); os.IsNotExist(err) {
		if err := os.WriteFile(readmePath, []byte(readmeContent), 0o644); err != nil {
			return fmt.Errorf("failed to write vault readme: %w", err)
		}
	}

	if _, err := c.run("add", "README.md"); err != nil {
		return err
	}
	if _, err := c.run("commit", "-m", "chore: initialize vault"); err != nil {
		return err
	}

	return nil
}

// CommitAll stages and commits every change in the working tree. It
// initializes the repository first if needed and is a no-op when the tree is
// clean.
func (c *Client) CommitAll(message string) error {
	if !c.IsRepo() {
		if err := c.Init(); err != nil {
			return err
		}
	}

	if _, err := c.run("add", "-A"); err != nil {
		return err
	}

	status, err := c.run("status", "--porcelain")
	if err != nil {
		return err
	}
	if status == "" {
		return nil
	}

	_, err = c.run("commit", "-m", message)
	return err
}

// AddRemote registers a remote by name.
func (c *Client) AddRemote(name, url string) error {
	if !c.IsRepo() {
		return ErrNotRepo
	}
	_, err := c.run("remote", "add", name, url)
	return err
}

// Push pushes the branch to the remote.
func (c *Client) Push(remote, branch string) error {
	if !c.IsRepo() {
		return ErrNotRepo
	}
	_, err := c.run("push", remote, branch)
	return err
}

// Pull pulls the branch from the remote.
func (c *Client) Pull(remote, branch string) error {
	if !c.IsRepo() {
		return ErrNotRepo
	}
	_, err := c.run("pull", remote, branch)
	return err
}

// Status returns the short status of the working tree.
func (c *Client) Status() (string, error) {
	if !c.IsRepo() {
		return "", ErrNotRepo
	}
	return c.run("status", "--short")
}
