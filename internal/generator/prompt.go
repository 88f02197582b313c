package generator

import (
	"fmt"
	"strings"
)

// 提示词构造均为纯函数，调用方需保证 topics 非空

func SyllabusPrompt(goal string, durationDays int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are Mimir, an expert curriculum designer. Design a %d-day learning bootcamp.\n\n", durationDays)
	fmt.Fprintf(&b, "LEARNING GOAL: %q\n\n", goal)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Produce exactly %d days, numbered 1 to %d in order.\n", durationDays, durationDays)
	b.WriteString("- Each day has a short title, a one or two sentence description, and 3-5 topics.\n")
	b.WriteString("- Progress from fundamentals to advanced material; each day builds on the previous ones.\n")
	if durationDays >= 14 {
		b.WriteString("- Every 7th day is a review day that consolidates the preceding week.\n")
	}
	b.WriteString("\nReturn ONLY a JSON object with this exact shape, no markdown and no commentary:\n")
	b.WriteString(`{"days":[{"day":1,"title":"...","description":"...","topics":["...","...","..."]}]}`)
	b.WriteString("\n")
	return b.String()
}

func LessonPrompt(goal string, dayNumber int, dayTitle string, topics []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are Mimir, an expert educator creating engaging learning content. Generate a comprehensive lesson for Day %d of a bootcamp.\n\n", dayNumber)
	fmt.Fprintf(&b, "BOOTCAMP GOAL: %q\n\n", goal)
	fmt.Fprintf(&b, "DAY %d: %s\n\n", dayNumber, dayTitle)
	b.WriteString("TOPICS TO COVER:\n")
	for i, t := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	b.WriteString(`
Write the lesson in Markdown with these sections:

1. Introduction: what will be learned today, why it matters, and how it connects to previous days.
2. Main content: one section per topic with clear explanations, real-world examples and analogies. Include code examples in fenced blocks with a language tag when relevant.
3. Practical examples: at least 2-3 concrete examples showing correct usage and common mistakes.
4. Key takeaways: a bulleted summary of what to remember.
5. Next steps: how today connects to upcoming lessons.

Formatting: use ## for sections and ### for subsections, keep paragraphs short, use **bold** for key terms and inline code for identifiers.
Tone: friendly, clear and encouraging; address the learner as "you".
The lesson should take about 20-30 minutes to read.

Generate the lesson content now (Markdown only, no JSON):
`)
	return b.String()
}

func ActivitiesPrompt(lessonContent string) string {
	var b strings.Builder
	b.WriteString("You are Mimir, an expert educator. Based on the lesson below, create exactly 4 practice activities.\n\n")
	b.WriteString("LESSON:\n")
	b.WriteString(lessonContent)
	b.WriteString(`

Requirements:
- Exactly 4 question/answer pairs drawn only from the lesson content.
- Mix conceptual questions with practical ones (apply, predict, fix or write something).
- Order them from easiest to hardest.
- Each answer is complete and explains the reasoning in a few sentences.

Return ONLY a JSON array, no markdown and no commentary:
[{"question":"...","answer":"..."},{"question":"...","answer":"..."},{"question":"...","answer":"..."},{"question":"...","answer":"..."}]
`)
	return b.String()
}
