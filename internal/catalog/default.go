package catalog

import "github.com/unbound-force/discern/internal/taxonomy"

// Default returns the built-in pattern catalog. Weights are
// calibrated so a single keyword hit from a high-weight pattern
// clears 0.5 confidence under the default scoring constants.
func Default() *Catalog {
	return New([]Pattern{
		{
			Intent:   taxonomy.IntentGreeting,
			Keywords: []string{"hello", "hi", "hey", "greetings", "howdy"},
			Phrases:  []string{"good morning", "good afternoon", "good evening"},
			Weight:   0.9,
		},
		{
			Intent:   taxonomy.IntentCreate,
			Keywords: []string{"create", "make", "build", "add", "generate", "new"},
			Phrases:  []string{"set up", "spin up"},
			Weight:   0.9,
		},
		{
			Intent:   taxonomy.IntentUpdate,
			Keywords: []string{"update", "change", "modify", "edit", "rename", "adjust"},
			Phrases:  []string{"bump the"},
			Weight:   0.9,
		},
		{
			Intent:   taxonomy.IntentDelete,
			Keywords: []string{"delete", "remove", "drop", "destroy", "erase"},
			Phrases:  []string{"get rid of", "clean up"},
			Weight:   0.9,
		},
		{
			Intent:   taxonomy.IntentQuery,
			Keywords: []string{"what", "how", "why", "when", "who", "explain", "show", "describe"},
			Phrases:  []string{"tell me", "what is"},
			Weight:   0.7,
		},
		{
			Intent:   taxonomy.IntentSearch,
			Keywords: []string{"find", "search", "locate", "lookup"},
			Phrases:  []string{"look for", "look up"},
			Weight:   0.85,
		},
		{
			Intent:   taxonomy.IntentExecute,
			Keywords: []string{"run", "execute", "send", "launch", "start", "trigger", "deploy", "install"},
			Phrases:  []string{"kick off"},
			Weight:   0.85,
		},
		{
			Intent:   taxonomy.IntentHelp,
			Keywords: []string{"help", "assist", "support"},
			Phrases:  []string{"how do i", "can you help"},
			Weight:   0.8,
		},
		{
			Intent:   taxonomy.IntentStatus,
			Keywords: []string{"status", "health", "progress", "uptime"},
			Phrases:  []string{"is it up", "how is it going"},
			Weight:   0.8,
		},
	})
}
