// File: diagrams.go
// Role: the demo diagrams. Table values follow the layout of the model
// package: the child first, then the parents in the order of the arcs.

package demos

import "github.com/katalvlaran/lvlid/model"

// OilWildcatter is Raiffa's oil wildcatter: an optional seismic test
// (cost 10) before deciding whether to drill. MEU 22.5 by testing.
func OilWildcatter() (*model.InfluenceDiagram, error) {
	b := newBuilder("oil-wildcatter")
	oil := b.chance("Oil", "dry", "wet", "soaking")
	test := b.decision("Test", "yes", "no")
	result := b.chance("TestResult", "closed", "open", "diffuse")
	drill := b.decision("Drill", "yes", "no")
	reward := b.utility("Reward")
	cost := b.utility("TestCost")

	b.arcs(result, oil, test)
	b.arcs(drill, test, result)
	b.arcs(reward, oil, drill)
	b.arcs(cost, test)

	b.cpt(oil, 0.5, 0.3, 0.2)
	b.cpt(result,
		// Test = yes
		0.1, 0.3, 0.6, // dry
		0.3, 0.4, 0.3, // wet
		0.5, 0.4, 0.1, // soaking
		// Test = no: nothing learned
		1.0/3, 1.0/3, 1.0/3,
		1.0/3, 1.0/3, 1.0/3,
		1.0/3, 1.0/3, 1.0/3,
	)
	b.payoff(reward, -70, 50, 200, 0, 0, 0)
	b.payoff(cost, -10, 0)

	return b.done()
}

// ObservedChain is A → D → U with A → U: P(A) = (0.3, 0.7) and
// U(a0,d1) = U(a1,d0) = 10, zero elsewhere. MEU 10.
func ObservedChain() (*model.InfluenceDiagram, error) {
	b := newBuilder("observed-chain")
	a := b.chance("A", "a0", "a1")
	d := b.decision("D", "d0", "d1")
	u := b.utility("U")

	b.arcs(d, a)
	b.arcs(u, a, d)

	b.cpt(a, 0.3, 0.7)
	b.payoff(u, 0, 10, 10, 0)

	return b.done()
}

// Weather decides on an umbrella given a three-valued forecast. MEU 77.
func Weather() (*model.InfluenceDiagram, error) {
	b := newBuilder("weather")
	weather := b.chance("Weather", "sunny", "rainy")
	forecast := b.chance("Forecast", "sunny", "cloudy", "rainy")
	umbrella := b.decision("Umbrella", "take", "leave")
	satisfaction := b.utility("Satisfaction")

	b.arcs(forecast, weather)
	b.arcs(umbrella, forecast)
	b.arcs(satisfaction, weather, umbrella)

	b.cpt(weather, 0.7, 0.3)
	b.cpt(forecast,
		0.7, 0.2, 0.1, // sunny
		0.15, 0.25, 0.6, // rainy
	)
	b.payoff(satisfaction, 20, 70, 100, 0)

	return b.done()
}

// Treatment decides on a treatment after observing a symptom of a disease
// that also drives the outcome. MEU 90.8 (treat only when the symptom is
// present).
func Treatment() (*model.InfluenceDiagram, error) {
	b := newBuilder("treatment")
	disease := b.chance("Disease", "healthy", "ill")
	symptom := b.chance("Symptom", "absent", "present")
	treat := b.decision("Treat", "no", "yes")
	outcome := b.chance("Outcome", "good", "poor")
	value := b.utility("Value")
	cost := b.utility("Cost")

	b.arcs(symptom, disease)
	b.arcs(treat, symptom)
	b.arcs(outcome, disease, treat)
	b.arcs(value, outcome)
	b.arcs(cost, treat)

	b.cpt(disease, 0.9, 0.1)
	b.cpt(symptom,
		0.8, 0.2, // healthy
		0.3, 0.7, // ill
	)
	b.cpt(outcome,
		0.95, 0.05, // healthy, no
		0.2, 0.8, // ill, no
		0.95, 0.05, // healthy, yes
		0.85, 0.15, // ill, yes
	)
	b.payoff(value, 100, 0)
	b.payoff(cost, 0, -5)

	return b.done()
}
