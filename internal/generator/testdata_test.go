package generator

import (
	"fmt"
	"strings"
)

func syllabusJSON(days int) string {
	parts := make([]string, 0, days)
	for i := 1; i <= days; i++ {
		parts = append(parts, fmt.Sprintf(
			`{"day":%d,"title":"Day %d","description":"Covers part %d","topics":["topic a","topic b","topic c"]}`,
			i, i, i))
	}
	return `{"days":[` + strings.Join(parts, ",") + `]}`
}

const activitiesJSON = `[
 {"question":"What does useState return?","answer":"A state value and a setter."},
 {"question":"When does useEffect run?","answer":"After render, when dependencies change."},
 {"question":"Why avoid conditional hooks?","answer":"Hook order must be stable between renders."},
 {"question":"Write a custom hook for a toggle.","answer":"function useToggle(){const [v,s]=useState(false);return [v,()=>s(x=>!x)]}"}
]`

var longLesson = "## Introduction\n\n" + strings.Repeat("Hooks let you use state and other React features without classes. ", 5)
