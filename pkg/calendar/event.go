package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
)

// atomLayout is the interchange form for instants: full date, time and a
// numeric UTC offset. UTC renders as "+00:00", never "Z".
const atomLayout = "2006-01-02T15:04:05-07:00"

var ErrInvalidConfiguration = errors.New("invalid event configuration")

// Event is an immutable description of a single calendar entry, shaped for a
// frontend calendar-rendering library. It is constructed once via NewEvent,
// validated there, and projected on demand into the sparse JSON object the
// frontend consumes.
type Event struct {
	id              ID
	title           string
	allDay          bool
	start           time.Time
	end             *time.Time
	resourceIDs     []ID
	groupID         ID
	url             string
	openURLInNewTab bool
	textColor       string
	backgroundColor string
	borderColor     string
	extendedProps   map[string]any
	options         *Mapping
}

// EventOption configures an optional field of an Event during construction.
type EventOption func(*Event)

// WithAllDay marks the event as spanning whole days. An all-day event must
// not define an end.
func WithAllDay() EventOption {
	return func(e *Event) {
		e.allDay = true
	}
}

// WithEnd sets the instant the event finishes.
func WithEnd(end time.Time) EventOption {
	return func(e *Event) {
		e.end = &end
	}
}

// WithResourceIDs assigns the event to the given resource lanes, in order.
func WithResourceIDs(ids ...ID) EventOption {
	return func(e *Event) {
		e.resourceIDs = slices.Clone(ids)
	}
}

// WithGroupID groups the event with others sharing the same identifier.
func WithGroupID(id ID) EventOption {
	return func(e *Event) {
		e.groupID = id
	}
}

// WithURL attaches a link the frontend navigates to when the event is
// clicked. The value is passed through unvalidated.
func WithURL(url string) EventOption {
	return func(e *Event) {
		e.url = url
	}
}

// WithOpenURLInNewTab makes the event URL open in a new tab. It only has an
// effect when a URL is set.
func WithOpenURLInNewTab() EventOption {
	return func(e *Event) {
		e.openURLInNewTab = true
	}
}

// WithTextColor sets the event text color. The value is passed through
// unvalidated.
func WithTextColor(color string) EventOption {
	return func(e *Event) {
		e.textColor = color
	}
}

// WithBackgroundColor sets the event background color. The value is passed
// through unvalidated.
func WithBackgroundColor(color string) EventOption {
	return func(e *Event) {
		e.backgroundColor = color
	}
}

// WithBorderColor sets the event border color. The value is passed through
// unvalidated.
func WithBorderColor(color string) EventOption {
	return func(e *Event) {
		e.borderColor = color
	}
}

// WithExtendedProps attaches a free-form payload that the frontend exposes
// under the event's extendedProps. The map is copied.
func WithExtendedProps(props map[string]any) EventOption {
	return func(e *Event) {
		e.extendedProps = maps.Clone(props)
	}
}

// WithOption sets a single free-form key on the serialized event. Options are
// merged into the projection last and overwrite any computed field of the
// same name. Repeated calls append in call order.
func WithOption(key string, value any) EventOption {
	return func(e *Event) {
		e.options.Set(key, value)
	}
}

// WithOptions sets free-form keys on the serialized event, inserted in sorted
// key order so the output stays deterministic. See WithOption.
func WithOptions(options map[string]any) EventOption {
	return func(e *Event) {
		for _, key := range slices.Sorted(maps.Keys(options)) {
			e.options.Set(key, options[key])
		}
	}
}

// NewEvent builds an immutable Event from the required id, title and start
// plus any options. It fails when the combination of options is invalid; the
// returned error wraps ErrInvalidConfiguration. No other validation happens
// here: colors, URLs and resource identifiers are accepted as-is.
func NewEvent(id ID, title string, start time.Time, opts ...EventOption) (Event, error) {
	e := Event{
		id:      id,
		title:   title,
		start:   start,
		options: NewMapping(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.allDay && e.end != nil {
		return Event{}, fmt.Errorf("%w: an all-day event cannot define an end; set allDay to false or leave end unset", ErrInvalidConfiguration)
	}
	return e, nil
}

func (e Event) ID() ID {
	return e.id
}

func (e Event) Title() string {
	return e.title
}

func (e Event) AllDay() bool {
	return e.allDay
}

func (e Event) Start() time.Time {
	return e.start
}

// End returns the end instant and whether one was set.
func (e Event) End() (time.Time, bool) {
	if e.end == nil {
		return time.Time{}, false
	}
	return *e.end, true
}

func (e Event) ResourceIDs() []ID {
	return slices.Clone(e.resourceIDs)
}

// GroupID returns the group identifier and whether one was set.
func (e Event) GroupID() (ID, bool) {
	return e.groupID, !e.groupID.IsZero()
}

func (e Event) URL() string {
	return e.url
}

func (e Event) OpenURLInNewTab() bool {
	return e.openURLInNewTab
}

func (e Event) TextColor() string {
	return e.textColor
}

func (e Event) BackgroundColor() string {
	return e.backgroundColor
}

func (e Event) BorderColor() string {
	return e.borderColor
}

func (e Event) ExtendedProps() map[string]any {
	return maps.Clone(e.extendedProps)
}

// Mapping projects the event into the sparse, ordered object the frontend
// consumes. Required fields always appear; optional fields appear only when
// set; free-form options are merged last and overwrite computed fields of the
// same name.
func (e Event) Mapping() *Mapping {
	m := NewMapping()
	m.Set("id", e.id)
	m.Set("title", e.title)
	m.Set("allDay", e.allDay)
	m.Set("start", e.start.Format(atomLayout))
	if e.end != nil {
		m.Set("end", e.end.Format(atomLayout))
	}
	switch len(e.resourceIDs) {
	case 0:
	case 1:
		// A single resource assignment serializes under the singular key,
		// unwrapped.
		m.Set("resourceId", e.resourceIDs[0])
	default:
		m.Set("resourceIds", e.resourceIDs)
	}
	if !e.groupID.IsZero() {
		m.Set("groupId", e.groupID)
	}
	if e.url != "" {
		m.Set("url", e.url)
		// The companion flag travels with the URL even when false, so the
		// frontend never falls back to its own default.
		m.Set("shouldOpenUrlInNewTab", e.openURLInNewTab)
	}
	if e.extendedProps != nil {
		m.Set("extendedProps", e.extendedProps)
	}
	if e.textColor != "" {
		m.Set("textColor", e.textColor)
	}
	if e.backgroundColor != "" {
		m.Set("backgroundColor", e.backgroundColor)
	}
	if e.borderColor != "" {
		m.Set("borderColor", e.borderColor)
	}
	if e.options != nil {
		for _, key := range e.options.Keys() {
			value, _ := e.options.Get(key)
			m.Set(key, value)
		}
	}
	return m
}

// JSON encodes the event's projection. Values the encoder cannot represent
// (inside extendedProps or options) surface here as an error.
func (e Event) JSON() ([]byte, error) {
	data, err := json.Marshal(e.Mapping())
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %q: %w", e.title, err)
	}
	return data, nil
}

// String returns the JSON encoding of the event's projection, or the empty
// string when encoding fails.
func (e Event) String() string {
	data, err := e.JSON()
	if err != nil {
		log.Errorf("Error encoding event to JSON: %v", err)
		return ""
	}
	return string(data)
}
