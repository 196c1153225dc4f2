package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"social-store/internal/models"
	"social-store/internal/storage"
)

// CLI - строчная оболочка над хранилищем; вся логика данных
// остается за интерфейсом Store
type CLI struct {
	store storage.Store
	out   io.Writer
}

// New создает оболочку поверх хранилища
func New(store storage.Store, out io.Writer) *CLI {
	return &CLI{store: store, out: out}
}

// Run читает команды до quit или конца ввода
func (c *CLI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	c.printf("social-store. Type 'help' for commands.\n")
	for {
		c.prompt()
		if !scanner.Scan() {
			return
		}
		if !c.Execute(scanner.Text()) {
			return
		}
	}
}

func (c *CLI) prompt() {
	if name := c.store.CurrentUsername(); name != "" {
		c.printf("%s> ", name)
	} else {
		c.printf("> ")
	}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Execute выполняет одну команду; false означает выход
func (c *CLI) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		c.help()
	case "quit", "exit":
		return false
	case "register":
		if !c.expect(args, 2, "register <username> <password>") {
			return true
		}
		c.report(c.store.Register(args[0], args[1]))
	case "login":
		if !c.expect(args, 2, "login <username> <password>") {
			return true
		}
		c.report(c.store.Login(args[0], args[1]))
	case "logout":
		c.store.Logout()
		c.printf("ok\n")
	case "whoami":
		if name := c.store.CurrentUsername(); name != "" {
			c.printf("%s\n", name)
		} else {
			c.printf("not logged in\n")
		}
	case "post":
		if len(args) == 0 {
			c.usage("post <content>")
			return true
		}
		c.report(c.store.CreatePost(strings.Join(args, " ")))
	case "edit":
		if len(args) < 2 {
			c.usage("edit <postID> <content>")
			return true
		}
		c.report(c.store.EditPost(args[0], strings.Join(args[1:], " ")))
	case "delete":
		if !c.expect(args, 1, "delete <postID>") {
			return true
		}
		c.report(c.store.DeletePost(args[0]))
	case "posts":
		c.showPosts(c.store.GetAllPosts())
	case "feed":
		c.showPosts(c.store.GetFeedPosts())
	case "userposts":
		if !c.expect(args, 1, "userposts <username>") {
			return true
		}
		c.showPosts(c.store.GetPostsByUser(args[0]))
	case "comment":
		if len(args) < 2 {
			c.usage("comment <postID> <text>")
			return true
		}
		c.report(c.store.AddComment(args[0], strings.Join(args[1:], " ")))
	case "comments":
		if !c.expect(args, 1, "comments <postID>") {
			return true
		}
		for _, cm := range c.store.GetComments(args[0]) {
			c.printf("%s: %s\n", cm.AuthorUsername, cm.Content)
		}
	case "like":
		if !c.expect(args, 1, "like <postID>") {
			return true
		}
		c.report(c.store.ToggleLike(args[0]))
	case "likes":
		if !c.expect(args, 1, "likes <postID>") {
			return true
		}
		c.printf("%d\n", c.store.GetLikeCount(args[0]))
	case "friend":
		if !c.expect(args, 1, "friend <username>") {
			return true
		}
		c.report(c.store.AddFriend(args[0]))
	case "unfriend":
		if !c.expect(args, 1, "unfriend <username>") {
			return true
		}
		c.report(c.store.RemoveFriend(args[0]))
	case "friends":
		for _, f := range c.store.GetFriendList() {
			c.printf("%s\n", f)
		}
	case "suggest":
		for _, u := range c.store.SuggestFriends() {
			c.printf("%s\n", u)
		}
	case "search":
		if !c.expect(args, 1, "search <username>") {
			return true
		}
		if u, ok := c.store.SearchUser(args[0]); ok {
			c.printf("%s %s\n", u.UserID, u.Username)
		} else {
			c.printf("not found\n")
		}
	default:
		c.printf("unknown command: %s\n", cmd)
	}
	return true
}

func (c *CLI) help() {
	c.printf("commands: help quit exit register login logout whoami post edit delete posts feed userposts comment comments like likes friend unfriend friends suggest search\n")
}

func (c *CLI) expect(args []string, n int, usage string) bool {
	if len(args) != n {
		c.usage(usage)
		return false
	}
	return true
}

func (c *CLI) usage(u string) {
	c.printf("usage: %s\n", u)
}

func (c *CLI) report(ok bool) {
	if ok {
		c.printf("ok\n")
	} else {
		c.printf("failed\n")
	}
}

func (c *CLI) showPosts(posts []models.Post) {
	for _, p := range posts {
		c.printf("%s\n\n", c.store.PostSummary(p))
	}
}
