package throttle

// SharedBudget divides one TPM limit across several named agents by
// relative weight, so concurrent workers sharing an API key each get a
// bounded slice of the total instead of racing for the whole window.
//
// Weights are normalized: (30_000, {"main": 3, "search": 1}) gives the
// main agent a 22.5K ceiling and the search agent 7.5K. The division is
// advisory per process; agents do not coordinate at runtime.
type SharedBudget struct {
	// TotalTPM is the full TPM limit shared by all agents.
	TotalTPM int

	weights map[string]int
	sum     int
}

// NewSharedBudget creates a shared budget over the given total TPM limit.
// If totalTPM is <= 0, DefaultTokensPerMinute is used.
func NewSharedBudget(totalTPM int) *SharedBudget {
	if totalTPM <= 0 {
		totalTPM = DefaultTokensPerMinute
	}
	return &SharedBudget{
		TotalTPM: totalTPM,
		weights:  make(map[string]int),
	}
}

// Assign gives an agent a relative weight. Weights <= 0 are ignored.
// Assigning an existing agent replaces its weight.
func (s *SharedBudget) Assign(agent string, weight int) *SharedBudget {
	if weight <= 0 {
		return s
	}
	if old, ok := s.weights[agent]; ok {
		s.sum -= old
	}
	s.weights[agent] = weight
	s.sum += weight
	return s
}

// Fraction returns the normalized share of the total for an agent,
// or 0 if the agent has no weight assigned.
func (s *SharedBudget) Fraction(agent string) float64 {
	if s.sum == 0 {
		return 0
	}
	return float64(s.weights[agent]) / float64(s.sum)
}

// Ceiling returns the per-window token ceiling for an agent.
func (s *SharedBudget) Ceiling(agent string) int {
	return int(float64(s.TotalTPM) * s.Fraction(agent))
}

// Throttle builds a throttle for an agent, capped to its share of the
// total. An agent with no weight falls back to DefaultSubAgentFraction.
func (s *SharedBudget) Throttle(agent string) *Throttle {
	fraction := s.Fraction(agent)
	return NewSubAgent(s.TotalTPM, fraction)
}

// Agents returns the names with assigned weights.
func (s *SharedBudget) Agents() []string {
	agents := make([]string, 0, len(s.weights))
	for name := range s.weights {
		agents = append(agents, name)
	}
	return agents
}
