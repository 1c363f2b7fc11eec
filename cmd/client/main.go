package main

import (
	"bufio"
	"chat-relay/auth"
	"chat-relay/client"
	"chat-relay/domain"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config is read from RELAY_* variables; flags override it.
type Config struct {
	URL     string `envconfig:"RELAY_URL" default:"http://localhost:8080"`
	Token   string `envconfig:"RELAY_TOKEN"`
	Colours bool   `envconfig:"RELAY_COLOURS" default:"true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(config, os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func newApp(config Config, in io.Reader, out io.Writer) *cli.Command {
	newClient := func(cmd *cli.Command) *client.Client {
		return client.New(cmd.String("url"), cmd.String("token"))
	}

	return &cli.Command{
		Name:  "relay",
		Usage: "chat relay command line client",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: config.URL, Usage: "relay base URL"},
			&cli.StringFlag{Name: "token", Value: config.Token, Usage: "bearer token (see login)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "create an account and print its token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "name", Usage: "full name"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					session, err := newClient(cmd).Register(ctx, auth.RegisterRequest{
						FullName: cmd.String("name"),
						Username: cmd.String("username"),
						Email:    cmd.String("email"),
						Password: cmd.String("password"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(out, color.Green.Sprintf("Registered %s (%s)", session.User.Username, session.User.ID))
					fmt.Fprintln(out, session.Token)
					return nil
				},
			},
			{
				Name:  "login",
				Usage: "print a token for an existing account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					session, err := newClient(cmd).Login(ctx, auth.LoginRequest{
						Username: cmd.String("username"),
						Password: cmd.String("password"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(out, session.Token)
					return nil
				},
			},
			{
				Name:  "rooms",
				Usage: "list rooms, or search them by name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					rooms, err := newClient(cmd).Rooms(ctx, cmd.String("query"))
					if err != nil {
						return err
					}
					renderRooms(out, rooms)
					return nil
				},
			},
			{
				Name:      "create-room",
				Usage:     "create a room",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "private"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := strings.Join(cmd.Args().Slice(), " ")
					room, err := newClient(cmd).CreateRoom(ctx, name, cmd.Bool("private"))
					if err != nil {
						return err
					}
					renderRooms(out, []domain.Room{room})
					return nil
				},
			},
			{
				Name:  "chat",
				Usage: "join a room and chat; '/to <user> <text>' sends a direct message, '/join <room>' joins another room",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "room", Value: string(domain.DefaultRoom)},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					chat, err := newClient(cmd).Dial(ctx, domain.RoomID(cmd.String("room")))
					if err != nil {
						return err
					}
					return converse(ctx, chat, domain.RoomID(cmd.String("room")), in, out)
				},
			},
		},
	}
}

func renderRooms(out io.Writer, rooms []domain.Room) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Private", "Created by", "Created at"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, room := range rooms {
		table.Append([]string{
			string(room.ID),
			room.Name,
			fmt.Sprint(room.IsPrivate),
			string(room.CreatedBy),
			room.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

// converse prints incoming messages while sending each input line, until
// the input ends, ctx is done or the relay closes the session.
func converse(ctx context.Context, chat *client.Chat, room domain.RoomID, in io.Reader, out io.Writer) error {
	received := make(chan error, 1)
	go func() {
		for {
			msg, err := chat.Receive()
			if err != nil {
				received <- err
				return
			}
			fmt.Fprintln(out, render(msg))
		}
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	defer chat.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-received:
			fmt.Fprintln(out, color.Yellow.Sprintf("Session closed: %v", err))
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := send(chat, room, line); err != nil {
				return err
			}
		}
	}
}

func send(chat *client.Chat, room domain.RoomID, line string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "/to "):
		to, content, _ := strings.Cut(strings.TrimPrefix(line, "/to "), " ")
		return chat.Whisper(domain.UserID(to), content)
	case strings.HasPrefix(line, "/join "):
		return chat.Join(domain.RoomID(strings.TrimSpace(strings.TrimPrefix(line, "/join "))))
	default:
		return chat.Say(room, line)
	}
}

func render(msg domain.Message) string {
	at := msg.Timestamp.Local().Format("15:04:05")
	switch msg.Kind {
	case domain.KindText:
		return fmt.Sprintf("%s [%s] %s: %s", at, msg.RoomID, color.Cyan.Sprint(msg.SenderID), msg.Content)
	case domain.KindPrivate:
		return fmt.Sprintf("%s %s -> %s: %s", at, color.Magenta.Sprint(msg.SenderID), msg.RecipientID, msg.Content)
	case domain.KindJoin:
		return color.Green.Sprintf("%s [%s] %s joined", at, msg.RoomID, msg.UserID)
	case domain.KindLeave:
		return color.Yellow.Sprintf("%s [%s] %s left", at, msg.RoomID, msg.UserID)
	case domain.KindSystem:
		return color.Red.Sprintf("%s [%s] %s", at, msg.RoomID, msg.Content)
	case domain.KindTyping:
		return color.Gray.Sprintf("%s is typing...", msg.SenderID)
	default:
		return color.Gray.Sprintf("%s read %s", msg.SenderID, msg.MessageID)
	}
}
