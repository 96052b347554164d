// Package config loads the lvlid YAML configuration.
//
// A file looks like:
//
//	engine:
//	  heuristic: min-fill        # min-weight | min-fill | min-degree
//	  strategy: elimination-tree # elimination-tree | maximal-cliques
//	logging:
//	  level: info                # debug | info | warn | error
//	  format: text               # text | json
//	render:
//	  format: svg                # dot | svg | png
//	  rankdir: TB
//
// Missing sections keep the values of Default. Load validates the result
// with struct tags; EngineOptions and Logger turn it into inference options
// and a *slog.Logger.
package config
