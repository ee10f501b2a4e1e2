package catalog

func it(name string, tags ...string) Item {
	return Item{Name: name, Tags: tags}
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

// scenario is the three-item collection used across the engine tests.
func scenario() []Item {
	return []Item{
		{Name: "Unity", Description: "Cross-platform engine", CreationYear: "2005", Link: "https://unity.com", Tags: []string{"Motor de Jogo", "C#"}},
		{Name: "PhysX", Description: "Realtime physics SDK", CreationYear: "2004", Link: "https://developer.nvidia.com/physx-sdk", Tags: []string{"Motor de Física"}},
		{Name: "Indie X", Description: "A small game", CreationYear: "2020", Link: "https://example.com"},
	}
}

type fixedColors map[string]string

func (f fixedColors) ColorFor(category string) string {
	if c, ok := f[category]; ok {
		return c
	}
	return "default"
}
