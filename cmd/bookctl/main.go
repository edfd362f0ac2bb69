// Command bookctl is a small terminal client for the bookstore API. It keeps
// the session token under the user's home directory, so login survives
// between invocations.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bookhaven/bookstore-api/pkg/client"
)

const usage = `usage: bookctl [-server URL] <command> [args]

commands:
  login <email> <password>
  register <email> <password> <confirm-password>
  logout
  whoami
  authors
  author <id>
  create-author <first> <last> [bio]
  delete-author <id>
  books
  book <id>
  create-book <author-id> <title> <isbn>
  delete-book <id>
`

func main() {
	server := flag.String("server", envOr("BOOKSTORE_URL", "http://localhost:8080"), "bookstore API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c, err := client.New(*server, client.NewFileTokenStore(tokenPath()))
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := run(ctx, c, args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login needs <email> <password>")
		}
		if err := c.Session().Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", c.Session().Current().Email)
		return nil

	case "register":
		if len(args) != 3 {
			return fmt.Errorf("register needs <email> <password> <confirm-password>")
		}
		if err := c.Session().Register(ctx, args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("account created, you can now login")
		return nil

	case "logout":
		if err := c.Session().Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		state := c.Session().Current()
		if !state.Authenticated {
			fmt.Println("anonymous")
			return nil
		}
		me, err := c.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(me)

	case "authors":
		authors, err := c.Authors(ctx)
		if err != nil {
			return err
		}
		return printJSON(authors)

	case "author":
		if len(args) != 1 {
			return fmt.Errorf("author needs <id>")
		}
		author, err := c.Author(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(author)

	case "create-author":
		if len(args) < 2 {
			return fmt.Errorf("create-author needs <first> <last> [bio]")
		}
		input := client.AuthorInput{FirstName: args[0], LastName: args[1]}
		if len(args) > 2 {
			input.Bio = args[2]
		}
		author, err := c.CreateAuthor(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(author)

	case "delete-author":
		if len(args) != 1 {
			return fmt.Errorf("delete-author needs <id>")
		}
		return c.DeleteAuthor(ctx, args[0])

	case "books":
		books, err := c.Books(ctx)
		if err != nil {
			return err
		}
		return printJSON(books)

	case "book":
		if len(args) != 1 {
			return fmt.Errorf("book needs <id>")
		}
		book, err := c.Book(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(book)

	case "create-book":
		if len(args) != 3 {
			return fmt.Errorf("create-book needs <author-id> <title> <isbn>")
		}
		book, err := c.CreateBook(ctx, client.BookInput{AuthorID: args[0], Title: args[1], ISBN: args[2]})
		if err != nil {
			return err
		}
		return printJSON(book)

	case "delete-book":
		if len(args) != 1 {
			return fmt.Errorf("delete-book needs <id>")
		}
		return c.DeleteBook(ctx, args[0])

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".bookstore", "session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bookctl:", err)
	os.Exit(1)
}
