package runtime

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
)

// Replies shown to players. Formats take the service name unless noted.
const (
	msgAlreadyHosting = "_You are currently hosting service %s. You cannot be a host for more than one service. " +
		"You can, however, unhost it first using the /unhost command._"
	msgCannotJoinChannel  = "Cannot add you to the channel for service %s. Maybe the channel has been archived."
	msgChannelDoesntExist = "_Channel for service %s does not exist. Maybe the channel hasn't been created yet. " +
		"You may create the channel using the /newservice command._"
	msgChannelCreated      = "_Successfully created a private channel for service %s._"
	msgCannotCreateChannel = "_Cannot create group for service %s: %s_"
	msgFloorRequest        = "_I get it. You want to be on the CTF floor. I'll let Giovanni know and get back to you " +
		"later when it's your turn._"
	msgInvalidServiceName = "Invalid service name %s. Service name can only include letters, digits, dashes and underscores."
	msgInvitedOnFloor     = "You are now invited to go to the CTF floor in Planet Hollywood. *Don't get lost!* " +
		"Remember to run /leavefloor before you are leaving the CTF floor."
	msgMissingServiceName = "_Please specify the name of the service that you want to host._"
	msgNotAPlayer         = "_You do not seem to be a Shellphish player at DEFCON CTF 2019. Contact the team lead if " +
		"you believe this is incorrect._"
	msgNotHosting       = "_You are not hosting any service._"
	msgNotImplemented   = "Not implemented. Do we really need this?"
	msgPermissionDenied = "_You do not have permission to perform this request._"
	msgRequestReceived  = "_Request received :) Hang on._"
	msgSuccess          = "Success!"
	msgHostingFailed    = "_Cannot make you the host of service %s: %s_"
	msgCommandFailed    = "_Something went wrong on my side, please try again later._"
	msgUnhosted         = "_Successfully unhosted yourself from service %s._"
	// takes the raw reference typed by the admin
	msgUnknownPlayer = "_Cannot find player %s._"
	msgMissingPlayer = "_Please specify the player, e.g. /approve @fish._"
	// take a participant ID
	msgSetOnFloor  = msgRequestReceived + " Player <@%s> is set to be on the floor."
	msgLeftFloor   = msgRequestReceived + " Player <@%s> is not on the floor any more."
	msgFloorInvite = "_Player <@%s> has been invited to the CTF floor._"
	// takes the user ID then the echoed text
	msgEcho = "User %s said: %s"

	msgHello = "Hello, world!"
)

// rejections maps the refusals a player can get to their message.
var rejections = map[error]string{
	errors.ErrNotAPlayer:          msgNotAPlayer,
	errors.ErrInvalidServiceName:  msgInvalidServiceName,
	errors.ErrChannelDoesNotExist: msgChannelDoesntExist,
	errors.ErrMissingServiceName:  msgMissingServiceName,
	errors.ErrAlreadyHosting:      msgAlreadyHosting,
	errors.ErrNotHosting:          msgNotHosting,
	errors.ErrCannotJoinChannel:   msgCannotJoinChannel,
}

// rejection renders the ephemeral refusal for err, args filling its format.
func rejection(err error, args ...any) domain.Response {
	format, ok := rejections[err]
	if !ok {
		return domain.EphemeralText(msgCommandFailed)
	}
	if len(args) == 0 {
		return domain.EphemeralText(format)
	}
	return domain.EphemeralText(fmt.Sprintf(format, args...))
}

const helpText = "List of commands supported by dcbot:\n" +
	"- Services\n" +
	"`/listservice`  List available services that are currently online\n" +
	"`/workon <service>`  Join a service channel\n" +
	"`/newservice <service>`  Create a channel for a service\n" +
	"\n" +
	"- Service hosts\n" +
	"`/host <service>`  Become a host of a service\n" +
	"`/unhost`  No longer be a host for the service you are hosting\n" +
	"\n" +
	"- Trips to the CTF floor\n" +
	"`/floorstatus`  List the status of the CTF floor\n" +
	"`/floor`  Express my intent to go to the CTF floor\n" +
	"`/leavefloor`  Leave the CTF floor\n" +
	"\n" +
	"- Administration\n" +
	"`/approve <user>`  Approve a CTF floor request\n" +
	"Detailed descriptions of each command can be found at https://github.com/ltfish/dcbot/blob/master/README.md.\n"
