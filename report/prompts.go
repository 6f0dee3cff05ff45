package report

// Prompt templates for the worker roles. The researcher prompts take the
// task; the writer prompts take the task and a research excerpt.
const (
	dataResearcherPrompt = `As a Data Researcher, find factual data, statistics, and scientific information about:

%s

Keep it concise but thorough.`

	marketResearcherPrompt = `As a Market Researcher, analyze market trends, industry developments, and business implications of:

%s

Keep it concise but thorough.`

	technicalWriterPrompt = `As a Technical Writer, create a detailed technical section for a report on:

%s

Based on this research:

%s

Focus on technical accuracy and depth.`

	summaryWriterPrompt = `As a Summary Writer, create an executive summary for a report on:

%s

Based on this research:

%s

Keep it clear and accessible for a general audience.`
)
