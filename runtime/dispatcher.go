// Package runtime turns slash commands into replies.
// It authorizes and validates synchronously, mutates the state that the
// immediate reply depends on, and hands every remote call to a job that
// later delivers exactly one deferred reply.
package runtime

import (
	"context"
	"dcbot/auth"
	"dcbot/contract"
	"dcbot/domain"
	"dcbot/errors"
	"dcbot/services"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// gate is the authorization a command requires before running.
type gate int

const (
	gateNone gate = iota
	gatePlayer
	gateAdmin
)

type handlerFunc func(ctx context.Context, req domain.CommandRequest) (domain.Response, error)

type command struct {
	gate   gate
	handle handlerFunc
}

type DispatcherConfig struct {
	// BotHandle is the account invited into every new service channel.
	BotHandle string
	Admins    map[string]struct{}
}

type Dispatcher struct {
	log         *slog.Logger
	directory   services.IDirectoryService
	floor       services.IFloorService
	hosting     services.IHostingService
	authorizer  *auth.Authorizer
	gateway     contract.IChatGateway
	responder   contract.IResponder
	broadcaster contract.IBroadcaster
	jobs        contract.IJobRunner
	botHandle   string
	now         func() time.Time
	commands    map[string]command
}

var _ contract.ICommandDispatcher = (*Dispatcher)(nil)

func NewDispatcher(
	log *slog.Logger,
	directory services.IDirectoryService,
	floor services.IFloorService,
	hosting services.IHostingService,
	gateway contract.IChatGateway,
	responder contract.IResponder,
	broadcaster contract.IBroadcaster,
	jobs contract.IJobRunner,
	config DispatcherConfig,
) *Dispatcher {
	d := &Dispatcher{
		log:         log,
		directory:   directory,
		floor:       floor,
		hosting:     hosting,
		authorizer:  auth.NewAuthorizer(directory, config.Admins),
		gateway:     gateway,
		responder:   responder,
		broadcaster: broadcaster,
		jobs:        jobs,
		botHandle:   config.BotHandle,
		now:         time.Now,
	}
	d.commands = map[string]command{
		"echo":          {gate: gateNone, handle: d.echo},
		"listservice":   {gate: gatePlayer, handle: d.listService},
		"newservice":    {gate: gatePlayer, handle: d.newService},
		"workon":        {gate: gatePlayer, handle: d.workOn},
		"host":          {gate: gatePlayer, handle: d.host},
		"unhost":        {gate: gatePlayer, handle: d.unhost},
		"floor":         {gate: gatePlayer, handle: d.requestFloor},
		"floorstatus":   {gate: gatePlayer, handle: d.floorStatus},
		"approve":       {gate: gateAdmin, handle: d.approve},
		"leavefloor":    {gate: gatePlayer, handle: d.leaveFloor},
		"bothelp":       {gate: gatePlayer, handle: d.help},
		"iamonthefloor": {gate: gateNone, handle: d.notImplemented},
		"slackers":      {gate: gateNone, handle: d.notImplemented},
	}
	return d
}

// Commands lists the routes the dispatcher serves, sorted.
func (d *Dispatcher) Commands() []string {
	routes := make([]string, 0, len(d.commands))
	for route := range d.commands {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

// Hello is the reply of the index route.
func (d *Dispatcher) Hello() string {
	return msgHello
}

// Dispatch runs the command served under route. Rejections and failures
// meant for the caller come back as a Response with a nil error, a store
// failure included. Errors are reserved to requests the transport must
// refuse: errors.ErrNotFound, errors.ErrCommandMismatch and
// errors.ErrInvalidRequest.
func (d *Dispatcher) Dispatch(ctx context.Context, route string, req domain.CommandRequest) (domain.Response, error) {
	cmd, ok := d.commands[route]
	if !ok {
		return domain.Response{}, fmt.Errorf("command %q: %w", route, errors.ErrNotFound)
	}
	if req.Command != "/"+route {
		return domain.Response{}, fmt.Errorf("%w: %q sent to /%s", errors.ErrCommandMismatch, req.Command, route)
	}
	if err := auth.ValidateCommand(req); err != nil {
		return domain.Response{}, err
	}

	log := d.log.With("command", req.Command, "user_id", req.UserID)
	switch cmd.gate {
	case gatePlayer:
		if err := d.authorizer.RequirePlayer(req.UserID); err != nil {
			if stderrors.Is(err, errors.ErrNotAPlayer) {
				log.Info("Command refused to a non player")
				return rejection(errors.ErrNotAPlayer), nil
			}
			log.Error("Cannot authorize caller", "error", err)
			return domain.EphemeralText(msgCommandFailed), nil
		}
		d.recordActivity(log, req)
	case gateAdmin:
		if err := d.authorizer.RequireAdmin(req.UserID); err != nil {
			log.Info("Command refused to a non administrator")
			return domain.PlainText(msgPermissionDenied), nil
		}
	}

	response, err := cmd.handle(ctx, req)
	if err != nil {
		log.Error("Command failed", "error", err)
		return domain.EphemeralText(msgCommandFailed), nil
	}
	log.Debug("Command handled", "text", req.Text)
	return response, nil
}

func (d *Dispatcher) recordActivity(log *slog.Logger, req domain.CommandRequest) {
	recorded, err := d.directory.RecordActivity(req.UserID, req.ChannelID)
	if err != nil {
		log.Warn("Cannot record activity", "channel_id", req.ChannelID, "error", err)
		return
	}
	if recorded {
		log.Debug("Activity recorded", "channel_id", req.ChannelID)
	}
}

// deferReply runs job in the background and sends whatever it returns to the
// response URL of req. A job returning a zero Response sends nothing.
func (d *Dispatcher) deferReply(req domain.CommandRequest, job func(ctx context.Context) domain.Response) {
	d.jobs.Go(req.Command, func(ctx context.Context) {
		response := job(ctx)
		if response.Text == "" && len(response.Attachments) == 0 {
			return
		}
		d.reply(ctx, req, response)
	})
}

func (d *Dispatcher) reply(ctx context.Context, req domain.CommandRequest, response domain.Response) {
	if req.ResponseURL == "" {
		d.log.Warn("Deferred reply dropped, no response URL", "command", req.Command, "user_id", req.UserID)
		return
	}
	if err := d.responder.Respond(ctx, req.ResponseURL, response); err != nil {
		d.log.Warn("Deferred reply lost", "command", req.Command, "user_id", req.UserID, "error", err)
	}
}
