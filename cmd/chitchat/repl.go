package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chitchat/domain/chat"
	"chitchat/services"
	"chitchat/state"
	"chitchat/stream"
)

type repl struct {
	log      *slog.Logger
	svc      *services.ChatService
	auth     *services.AuthService
	manager  *stream.Manager
	typing   *state.TypingTracker
	presence *state.PresenceTracker
	scanner  *bufio.Scanner
}

func newREPL(
	log *slog.Logger,
	svc *services.ChatService,
	auth *services.AuthService,
	manager *stream.Manager,
	typing *state.TypingTracker,
	presence *state.PresenceTracker,
) *repl {
	return &repl{
		log:      log,
		svc:      svc,
		auth:     auth,
		manager:  manager,
		typing:   typing,
		presence: presence,
		scanner:  bufio.NewScanner(os.Stdin),
	}
}

func (r *repl) run(ctx context.Context) error {
	color.Cyan.Println(`Type "help" for commands.`)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Print("> ")
		if !r.scanner.Scan() {
			return r.scanner.Err()
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "quit", "exit":
			return nil
		case "logout":
			if err := r.auth.Logout(ctx, r.svc.User().ID); err != nil {
				color.Red.Println(err)
			}
			return nil
		case "help":
			r.printHelp()
		case "rooms":
			r.cmdRooms(ctx)
		case "select":
			r.cmdSelect(ctx, rest)
		case "send":
			r.cmdSend(ctx, rest)
		case "sendfile":
			r.cmdSendFile(ctx, rest)
		case "create":
			r.cmdCreate(ctx, rest)
		case "dm":
			r.cmdDirect(ctx, rest)
		case "info":
			r.cmdInfo(ctx)
		case "invite":
			r.cmdInvite(ctx, rest)
		case "kick":
			r.cmdKick(ctx, rest)
		case "delete":
			r.cmdDelete(ctx)
		case "clear":
			r.cmdClear(ctx)
		case "friends":
			r.cmdFriends(ctx)
		case "addfriend":
			r.report(r.svc.AddFriend(ctx, rest))
		case "unfriend":
			r.report(r.svc.RemoveFriend(ctx, rest))
		case "search":
			r.cmdSearch(ctx, rest)
		case "notifs":
			r.cmdNotifications(ctx)
		case "accept":
			r.cmdRespond(ctx, rest, chat.Accept)
		case "reject":
			r.cmdRespond(ctx, rest, chat.Reject)
		case "who":
			r.cmdWho()
		case "status":
			fmt.Printf("stream: %s\n", r.manager.State())
		default:
			color.Red.Printf("unknown command %q\n", cmd)
		}
	}
}

func (r *repl) printHelp() {
	fmt.Println(`rooms                 list chatrooms
select <room_id>      open a room and load its history
send <text>           send a message to the open room
sendfile <path> [txt] upload a file and send it
create <name>         create a group room
dm <user_id>          open a direct chat
info                  show members of the open room
invite <username>     invite a user to the open room
kick <user_id>        kick a user from the open room
delete                delete the open room
clear                 clear the open room's history
friends               list friends with presence
addfriend <username>  send a friend request
unfriend <user_id>    remove a friend
search <query>        search users
notifs                list pending notifications
accept / reject <id>  resolve a notification
who                   who is typing in the open room
status                stream connection state
logout | quit`)
}

func (r *repl) report(err error) {
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Green.Println("ok")
}

func (r *repl) cmdRooms(ctx context.Context) {
	rooms, err := r.svc.RefreshRooms(ctx)
	if err != nil {
		color.Red.Println(err)
	}
	table := newTable([]string{"ID", "Name", "Kind", "Topic", "Messages"})
	for _, room := range rooms {
		table.Append([]string{room.ID, room.Name, string(room.Kind), room.Topic,
			strconv.Itoa(len(room.Messages))})
	}
	table.Render()
}

func (r *repl) cmdSelect(ctx context.Context, id string) {
	room, err := r.svc.SelectRoom(ctx, id)
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Cyan.Printf("-- %s --\n", room.Name)
	for _, msg := range room.Messages {
		fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Sender.Name, renderContent(msg))
	}
}

func (r *repl) cmdSend(ctx context.Context, text string) {
	// A line of input stands in for the keystroke burst.
	r.svc.KeyPressed()
	r.report(r.svc.SendMessage(ctx, text, nil))
}

func (r *repl) cmdSendFile(ctx context.Context, rest string) {
	path, caption, _ := strings.Cut(rest, " ")
	if path == "" {
		color.Red.Println("usage: sendfile <path> [caption]")
		return
	}
	r.report(r.svc.SendAttachment(ctx, path, strings.TrimSpace(caption)))
}

func (r *repl) cmdCreate(ctx context.Context, name string) {
	room, err := r.svc.CreateRoom(ctx, name)
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Green.Printf("created %s (id %s)\n", room.Name, room.ID)
}

func (r *repl) cmdDirect(ctx context.Context, userID string) {
	room, err := r.svc.OpenDirectChat(ctx, userID)
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Cyan.Printf("-- %s --\n", room.Name)
	for _, msg := range room.Messages {
		fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Sender.Name, renderContent(msg))
	}
}

func (r *repl) selectedID() (string, bool) {
	room, ok := r.svc.SelectedRoom()
	if !ok {
		color.Red.Println("no room selected")
		return "", false
	}
	return room.ID, true
}

func (r *repl) cmdInfo(ctx context.Context) {
	id, ok := r.selectedID()
	if !ok {
		return
	}
	info, err := r.svc.RoomInfo(ctx, id)
	if err != nil {
		color.Red.Println(err)
		return
	}
	table := newTable([]string{"ID", "Name", "Online"})
	for _, member := range info.Members {
		table.Append([]string{member.ID, member.Name, strconv.FormatBool(member.Online)})
	}
	table.Render()
}

func (r *repl) cmdInvite(ctx context.Context, username string) {
	if id, ok := r.selectedID(); ok {
		r.report(r.svc.InviteToRoom(ctx, id, username))
	}
}

func (r *repl) cmdKick(ctx context.Context, userID string) {
	if id, ok := r.selectedID(); ok {
		r.report(r.svc.KickFromRoom(ctx, id, userID))
	}
}

func (r *repl) cmdDelete(ctx context.Context) {
	if id, ok := r.selectedID(); ok {
		r.report(r.svc.DeleteRoom(ctx, id))
	}
}

func (r *repl) cmdClear(ctx context.Context) {
	if id, ok := r.selectedID(); ok {
		r.report(r.svc.ClearHistory(ctx, id))
	}
}

func (r *repl) cmdFriends(ctx context.Context) {
	friends, err := r.svc.RefreshFriends(ctx)
	if err != nil {
		color.Red.Println(err)
	}
	table := newTable([]string{"ID", "Name", "Status"})
	for _, friend := range friends {
		status := "offline"
		if entry, ok := r.presence.Get(friend.ID); ok && entry.Online {
			status = "online"
		} else if entry.LastSeen != "" {
			status = "last seen " + entry.LastSeen
		}
		table.Append([]string{friend.ID, friend.Name, status})
	}
	table.Render()
}

func (r *repl) cmdSearch(ctx context.Context, query string) {
	users, err := r.svc.SearchUsers(ctx, query, false)
	if err != nil {
		color.Red.Println(err)
		return
	}
	table := newTable([]string{"ID", "Name"})
	for _, user := range users {
		table.Append([]string{user.ID, user.Name})
	}
	table.Render()
}

func (r *repl) cmdNotifications(ctx context.Context) {
	items, err := r.svc.RefreshNotifications(ctx)
	if err != nil {
		color.Red.Println(err)
	}
	if len(items) == 0 {
		fmt.Println("no new notifications")
		return
	}
	table := newTable([]string{"ID", "Type", "From", "Room"})
	for _, item := range items {
		table.Append([]string{strconv.Itoa(item.ID), string(item.Kind), item.SenderName, item.RoomName})
	}
	table.Render()
}

func (r *repl) cmdRespond(ctx context.Context, rest string, decision chat.Decision) {
	id, err := strconv.Atoi(rest)
	if err != nil {
		color.Red.Println("usage: accept|reject <notification id>")
		return
	}
	r.report(r.svc.RespondNotification(ctx, id, decision))
}

func (r *repl) cmdWho() {
	id, ok := r.selectedID()
	if !ok {
		return
	}
	names := r.typing.Active(id)
	if len(names) == 0 {
		fmt.Println("nobody is typing")
		return
	}
	fmt.Printf("typing: %s\n", strings.Join(names, ", "))
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
