package domain

type BlockType string

const (
	BlockStationary BlockType = "stationary"
	BlockTravel     BlockType = "travel"
)

type MovementType string

const (
	MovementNone    MovementType = ""
	MovementWalking MovementType = "walking"
	MovementCycling MovementType = "cycling"
	MovementDriving MovementType = "driving"
	MovementTransit MovementType = "transit"
)

type ActivityType string

const (
	ActivityStill   ActivityType = "still"
	ActivityWalking ActivityType = "walking"
	ActivityRunning ActivityType = "running"
	ActivityCycling ActivityType = "cycling"
	ActivityDriving ActivityType = "driving"
	ActivityTransit ActivityType = "transit"
	ActivityUnknown ActivityType = "unknown"
)

// MovementFor maps a movement-class activity to its travel signature.
// Stationary activities map to MovementNone.
func MovementFor(a ActivityType) MovementType {
	switch a {
	case ActivityWalking, ActivityRunning:
		return MovementWalking
	case ActivityCycling:
		return MovementCycling
	case ActivityDriving:
		return MovementDriving
	case ActivityTransit:
		return MovementTransit
	}
	return MovementNone
}

type PlaceCategory string

const (
	PlaceHome    PlaceCategory = "home"
	PlaceWork    PlaceCategory = "work"
	PlaceGym     PlaceCategory = "gym"
	PlaceFood    PlaceCategory = "food"
	PlaceErrand  PlaceCategory = "errand"
	PlaceLeisure PlaceCategory = "leisure"
	PlaceTransit PlaceCategory = "transit"
	PlaceUnknown PlaceCategory = "unknown"
)

type InferredKind string

const (
	InferredHome     InferredKind = "home"
	InferredWork     InferredKind = "work"
	InferredFrequent InferredKind = "frequent"
)

type AppCategory string

const (
	AppCatWork          AppCategory = "work"
	AppCatCommunication AppCategory = "communication"
	AppCatSocial        AppCategory = "social"
	AppCatEntertainment AppCategory = "entertainment"
	AppCatUtility       AppCategory = "utility"
	AppCatWebsite       AppCategory = "website"
	AppCatUnknown       AppCategory = "unknown"
)

type EventKind string

const (
	EventApp       EventKind = "app"
	EventEmail     EventKind = "email"
	EventSlack     EventKind = "slack_message"
	EventMeeting   EventKind = "meeting"
	EventPhoneCall EventKind = "phone_call"
	EventSMS       EventKind = "sms"
	EventWebsite   EventKind = "website"
	EventScheduled EventKind = "scheduled"
)

// KindLabel returns the fixed display label for an event kind.
func KindLabel(k EventKind) string {
	switch k {
	case EventApp:
		return "App"
	case EventEmail:
		return "E-Mail"
	case EventSlack:
		return "Slack"
	case EventMeeting:
		return "Meeting"
	case EventPhoneCall:
		return "Call"
	case EventSMS:
		return "SMS"
	case EventWebsite:
		return "Website"
	case EventScheduled:
		return "Scheduled"
	}
	return string(k)
}

type ProductivityFlag string

const (
	Productive   ProductivityFlag = "productive"
	Neutral      ProductivityFlag = "neutral"
	Unproductive ProductivityFlag = "unproductive"
)

type ChatChannel string

const (
	ChannelSlack ChatChannel = "slack"
	ChannelSMS   ChatChannel = "sms"
)

// UnknownLabel is the placeholder label for unresolvable places.
const UnknownLabel = "Unknown"
