package calendar

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	log "github.com/sirupsen/logrus"
)

// Resource is an immutable description of a resource lane (a room, a person,
// a piece of equipment) that events point at through their resource ids. Like
// Event, it projects into the sparse object the frontend consumes.
type Resource struct {
	id                   ID
	title                string
	eventTextColor       string
	eventBackgroundColor string
	eventBorderColor     string
	children             []Resource
	extendedProps        map[string]any
	options              *Mapping
}

// ResourceOption configures an optional field of a Resource during
// construction.
type ResourceOption func(*Resource)

// WithEventTextColor sets the text color applied to events rendered in this
// resource's lane. The value is passed through unvalidated.
func WithEventTextColor(color string) ResourceOption {
	return func(r *Resource) {
		r.eventTextColor = color
	}
}

// WithEventBackgroundColor sets the background color applied to events
// rendered in this resource's lane. The value is passed through unvalidated.
func WithEventBackgroundColor(color string) ResourceOption {
	return func(r *Resource) {
		r.eventBackgroundColor = color
	}
}

// WithEventBorderColor sets the border color applied to events rendered in
// this resource's lane. The value is passed through unvalidated.
func WithEventBorderColor(color string) ResourceOption {
	return func(r *Resource) {
		r.eventBorderColor = color
	}
}

// WithChildren nests sub-resources under this resource, in order.
func WithChildren(children ...Resource) ResourceOption {
	return func(r *Resource) {
		r.children = slices.Clone(children)
	}
}

// WithResourceExtendedProps attaches a free-form payload exposed under the
// resource's extendedProps. The map is copied.
func WithResourceExtendedProps(props map[string]any) ResourceOption {
	return func(r *Resource) {
		r.extendedProps = maps.Clone(props)
	}
}

// WithResourceOption sets a single free-form key on the serialized resource.
// Options are merged into the projection last and overwrite any computed
// field of the same name. Repeated calls append in call order.
func WithResourceOption(key string, value any) ResourceOption {
	return func(r *Resource) {
		r.options.Set(key, value)
	}
}

// WithResourceOptions sets free-form keys on the serialized resource,
// inserted in sorted key order. See WithResourceOption.
func WithResourceOptions(options map[string]any) ResourceOption {
	return func(r *Resource) {
		for _, key := range slices.Sorted(maps.Keys(options)) {
			r.options.Set(key, options[key])
		}
	}
}

// NewResource builds an immutable Resource from the required id and title
// plus any options. Resources carry no cross-field invariant, so construction
// cannot fail.
func NewResource(id ID, title string, opts ...ResourceOption) Resource {
	r := Resource{
		id:      id,
		title:   title,
		options: NewMapping(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Resource) ID() ID {
	return r.id
}

func (r Resource) Title() string {
	return r.title
}

func (r Resource) Children() []Resource {
	return slices.Clone(r.children)
}

// Mapping projects the resource into the sparse, ordered object the frontend
// consumes. Children are projected recursively.
func (r Resource) Mapping() *Mapping {
	m := NewMapping()
	m.Set("id", r.id)
	m.Set("title", r.title)
	if r.eventTextColor != "" {
		m.Set("eventTextColor", r.eventTextColor)
	}
	if r.eventBackgroundColor != "" {
		m.Set("eventBackgroundColor", r.eventBackgroundColor)
	}
	if r.eventBorderColor != "" {
		m.Set("eventBorderColor", r.eventBorderColor)
	}
	if len(r.children) > 0 {
		children := make([]*Mapping, 0, len(r.children))
		for _, child := range r.children {
			children = append(children, child.Mapping())
		}
		m.Set("children", children)
	}
	if r.extendedProps != nil {
		m.Set("extendedProps", r.extendedProps)
	}
	if r.options != nil {
		for _, key := range r.options.Keys() {
			value, _ := r.options.Get(key)
			m.Set(key, value)
		}
	}
	return m
}

// JSON encodes the resource's projection.
func (r Resource) JSON() ([]byte, error) {
	data, err := json.Marshal(r.Mapping())
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource %q: %w", r.title, err)
	}
	return data, nil
}

// String returns the JSON encoding of the resource's projection, or the
// empty string when encoding fails.
func (r Resource) String() string {
	data, err := r.JSON()
	if err != nil {
		log.Errorf("Error encoding resource to JSON: %v", err)
		return ""
	}
	return string(data)
}
