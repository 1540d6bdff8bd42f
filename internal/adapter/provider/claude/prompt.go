package claude

import "fmt"

const systemPrompt = `You extract structured data from job postings. You never invent values: if a field is not stated in the posting, return an empty string for it.`

// buildPrompt creates the user message for one posting.
func buildPrompt(pageURL, pageText string) string {
	return fmt.Sprintf(`Below is the visible text of the job posting at %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "company_name": "<hiring company>",
  "job_title": "<title of the role>",
  "job_id": "<requisition or job id as printed, or empty>",
  "location": "<location or remote policy, or empty>",
  "description": "<two or three sentence summary of the role>",
  "portal_url": "<URL of the company's careers portal if mentioned, or empty>"
}

Rules:
- Use the company that is hiring, not the job board hosting the page
- Keep job_id exactly as printed
- Output ONLY the JSON, no markdown, no explanations

Posting text:
%s`, pageURL, pageText)
}
