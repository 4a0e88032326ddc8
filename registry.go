package geodesy

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is an immutable set of named ellipsoids. Lookups are
// case-insensitive. A Registry is safe for concurrent use.
type Registry struct {
	byName map[string]*Ellipsoid
}

// NewRegistry returns a registry holding es. Two ellipsoids whose names
// differ only in case collide and return ErrDuplicateEllipsoid.
func NewRegistry(es ...*Ellipsoid) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Ellipsoid, len(es))}
	for _, e := range es {
		if err := r.add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// StandardRegistry returns a registry of the package level ellipsoids:
// WGS84, GRS80, WGS72, GRS67, Airy1830, AiryModified, Bessel1841,
// Clarke1866, Clarke1880IGN, Intl1924, Krassovsky1940 and Sphere.
func StandardRegistry() *Registry {
	r, err := NewRegistry(
		WGS84, GRS80, WGS72, GRS67,
		Airy1830, AiryModified, Bessel1841,
		Clarke1866, Clarke1880IGN, Intl1924, Krassovsky1940,
		Sphere,
	)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(e *Ellipsoid) error {
	if e == nil {
		return fmt.Errorf("%w: nil ellipsoid", ErrInvalidEllipsoid)
	}
	key := strings.ToLower(e.name)
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateEllipsoid, e.name)
	}
	r.byName[key] = e
	return nil
}

// Lookup returns the ellipsoid registered under name.
func (r *Registry) Lookup(name string) (*Ellipsoid, error) {
	if e, ok := r.byName[strings.ToLower(name)]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
}

// Register returns a new registry that holds every ellipsoid of r plus e.
// The receiver is not modified.
func (r *Registry) Register(e *Ellipsoid) (*Registry, error) {
	next := &Registry{byName: make(map[string]*Ellipsoid, len(r.byName)+1)}
	for k, v := range r.byName {
		next.byName[k] = v
	}
	if err := next.add(e); err != nil {
		return nil, err
	}
	return next, nil
}

// Len returns the number of registered ellipsoids.
func (r *Registry) Len() int {
	return len(r.byName)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for _, e := range r.byName {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Ellipsoids returns the registered ellipsoids ordered by name.
func (r *Registry) Ellipsoids() []*Ellipsoid {
	es := make([]*Ellipsoid, 0, len(r.byName))
	for _, name := range r.Names() {
		es = append(es, r.byName[strings.ToLower(name)])
	}
	return es
}
