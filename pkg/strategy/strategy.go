package strategy

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c2quant/tastream/pkg/indicator"
	"github.com/c2quant/tastream/pkg/types"
)

var log = logrus.WithField("pkg", "strategy")

// Strategy is a named set of streaming indicators updated together from a
// single bar. Members never read each other's state; the only composition
// point is the fan-out loop here. Flattened outputs are namespaced as
// "<member>.<key>" so two members can never overwrite each other.
type Strategy struct {
	Name string

	names      []string
	indicators map[string]indicator.Streaming
}

func New(name string) *Strategy {
	return &Strategy{
		Name:       name,
		indicators: make(map[string]indicator.Streaming),
	}
}

// Add registers a member under a unique name. Duplicate names are a
// configuration error: silently replacing a member would also silently
// replace its output keys.
func (s *Strategy) Add(name string, inc indicator.Streaming) error {
	if name == "" {
		return errors.New("strategy: indicator name must not be empty")
	}
	if _, ok := s.indicators[name]; ok {
		return errors.Errorf("strategy %s: duplicate indicator name %q", s.Name, name)
	}

	s.names = append(s.names, name)
	s.indicators[name] = inc
	return nil
}

// PushK fans the bar out to every member in registration order.
func (s *Strategy) PushK(k types.KBar) {
	for _, name := range s.names {
		s.indicators[name].PushK(k)
	}

	updatesTotal.WithLabelValues(s.Name).Inc()
	readyIndicators.WithLabelValues(s.Name).Set(float64(s.ReadyCount()))
}

// CurrentValues returns the last output of every member, flattened into a
// single mapping keyed "<member>.<key>".
func (s *Strategy) CurrentValues() map[string]float64 {
	values := make(map[string]float64)
	for _, name := range s.names {
		for key, v := range s.indicators[name].Outputs() {
			values[name+"."+key] = v
		}
	}

	return values
}

// ReadyStatus reports per-member readiness.
func (s *Strategy) ReadyStatus() map[string]bool {
	status := make(map[string]bool, len(s.names))
	for _, name := range s.names {
		status[name] = s.indicators[name].Ready()
	}

	return status
}

func (s *Strategy) ReadyCount() int {
	count := 0
	for _, name := range s.names {
		if s.indicators[name].Ready() {
			count++
		}
	}

	return count
}

func (s *Strategy) AllReady() bool {
	return len(s.names) > 0 && s.ReadyCount() == len(s.names)
}

// Get looks a member up by name.
func (s *Strategy) Get(name string) (indicator.Streaming, bool) {
	inc, ok := s.indicators[name]
	return inc, ok
}

// Names returns the member names in registration order.
func (s *Strategy) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s *Strategy) Len() int {
	return len(s.names)
}

// ResetAll returns every member to its pre-first-update state.
func (s *Strategy) ResetAll() {
	for _, name := range s.names {
		s.indicators[name].Reset()
	}

	resetsTotal.WithLabelValues(s.Name).Inc()
	readyIndicators.WithLabelValues(s.Name).Set(0)
	log.Debugf("strategy %s: reset %d indicators", s.Name, len(s.names))
}
