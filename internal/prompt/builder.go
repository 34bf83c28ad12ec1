// Package prompt renders the model prompt templates. All functions are
// pure: no I/O, no failure paths. The output contract for each call kind
// is embedded in the template text, including the sentinel strings that
// stand in for absent values.
package prompt

import "fmt"

// Sentinel strings the templates instruct the model to emit for absent
// values. Parsers and presentation compare against these exact strings.
const (
	SentinelNoRecentReplies = "No recent replies"
	SentinelNotPublic       = "Not publicly available"
	SentinelNotFound        = "Not Found"
)

const listingTemplate = `Find and list up to %d businesses based on the query: "%s". For each business, provide its name, address, phone number, a brief description, its star rating, and the total number of reviews. This is page %d of the results. It is crucial that you provide different businesses than you would for other pages. The phone number MUST be in E.164 international format (e.g., +14155552671), with no spaces, parentheses, or dashes. Respond ONLY with a valid JSON array of objects. Each object must have keys: "name", "address", "phone", "description", "rating" (as a number, e.g., 4.5), and "reviewCount" (as a number, e.g., 125). Do not include any introductory text, markdown formatting, or code fences. If no more new results can be found, return an empty array.`

// Listing builds the free-text listing-search prompt for one page.
func Listing(query string, pageSize, page int) string {
	return fmt.Sprintf(listingTemplate, pageSize, query, page)
}

const deepDiveTemplate = `Act as a world-class business intelligence analyst. Your critical task is to conduct an exhaustive deep scrape of a specific business from the user's query and return a complete and accurate dataset in the specified JSON format.

1. Identify the Business:
   - Analyze the user's query to identify the exact business name and its location: "%s".

2. Gather Comprehensive Data (Exhaustive Search Required):
   - You must scour all available public online sources, including Google Maps, the business's official website, all official social media profiles (Facebook, Instagram, LinkedIn, Twitter/X, YouTube, etc.), news articles, and business directories to find the following information. Be relentless in your search.
   - Business Name: The official name.
   - Category: The primary business category (e.g., "Italian Restaurant", "Software Company").
   - Address: The full physical address.
   - Phone Number: The main contact number, formatted in E.164 international format (e.g., +14155552671).
   - Website: The full URL of the official business website. If not found, return an empty string "".
   - Total Reviews: The total count of Google Maps reviews as a number (e.g., 1234). If not found, return null.
   - Recent Review Reply Date: Find the date of the absolute most recent public reply made by the business owner to any Google Review. Format as "YYYY-MM-DD". If no replies can be found, you MUST return the string "` + SentinelNoRecentReplies + `".
   - Company Owner Name: The name of the primary owner, CEO, or founder, if publicly available. If this information cannot be found, you MUST return the string "` + SentinelNotPublic + `".
   - Owner's Social Media: A list of full URLs for the owner's public social media profiles (especially LinkedIn and Twitter/X). If none are found, you MUST return an empty array [].
   - Company Social Media: A list of full URLs for ALL official company social media profiles (Facebook, Instagram, LinkedIn, Twitter/X, YouTube, etc.). If none are found, you MUST return an empty array [].
   - Description: A brief, one-paragraph summary of the business's operations, products, or services.

3. Format the Output (Strict Adherence Required):
   - You MUST return a single, valid JSON object containing the gathered data.
   - Do not include any introductory text, explanations, apologies, or markdown formatting outside of the JSON object. Your entire response must be ONLY the JSON object itself.`

// DeepDive builds the schema-constrained single-business prompt.
func DeepDive(query string) string {
	return fmt.Sprintf(deepDiveTemplate, query)
}

const whatsappTemplate = `Analyze the E.164 formatted phone number %s. Determine if there is public evidence (e.g., on websites, social media) that it is associated with a WhatsApp or WhatsApp Business account. Respond ONLY with a valid JSON object matching the required schema.`

// WhatsAppCheck builds the messaging-status prompt for one number.
func WhatsAppCheck(number string) string {
	return fmt.Sprintf(whatsappTemplate, number)
}

const rankForKeywordTemplate = `Act as a local SEO analyst. Your task is to find a business's rank on Google Maps for a primary keyword, discover related ranking keywords, and provide a screenshot.

1. Business and Location:
   - Business Name: "%s"
   - Identifying Info: "%s"
   - Location: "%s"
   - Primary Keyword: "%s"

2. Primary Keyword Rank:
   - Simulate a Google Maps search for the primary keyword in the specified location.
   - Analyze the top 50 results to find the exact rank of the target business.

3. Discover Related Keywords:
   - Perform a supplementary analysis to discover up to 10 additional, relevant keywords for which this business also ranks in the top 50 in the same location.
   - For each discovered keyword, determine its search rank.

4. Format the Text Output (Strict Adherence Required):
   - The very first line of your text output MUST be the rank for the primary keyword. It should be a number (e.g., "3") or the text "` + SentinelNotFound + `". Do not add any other words on this line.
   - Starting on the second line, list each discovered keyword and its rank, one per line, using the format: keyword :: rank
   - If no related keywords are found, only output the primary rank on the first line.
   - Example Output:
     3
     pizza delivery near me :: 5
     best italian food in %s :: 8
     late night pizza :: 12

5. Generate Screenshot:
   - Generate a realistic screenshot of the Google Maps search results page for the primary keyword search.
   - If the target business was found, visually highlight it in the screenshot.`

// RankForKeyword builds the single-keyword rank-check prompt. The
// identifier (website or phone) disambiguates the business and may be
// empty.
func RankForKeyword(business, identifier, keyword, location string) string {
	return fmt.Sprintf(rankForKeywordTemplate, business, identifier, location, keyword, location)
}

const discoverKeywordsTemplate = `Act as a local SEO analyst. Your task is to perform an exhaustive discovery of all possible ranking keywords for a business on Google Maps.

1. Identify the Business:
   - Find the business named "%s" on Google Maps in the location "%s".
   - An identifying detail might be its website or phone: "%s".

2. Discover All Ranking Keywords:
   - Perform a deep and comprehensive analysis of the local search landscape for this business. Search as deep as possible.
   - Your goal is to identify as many relevant keywords as possible for which this business appears in Google Maps search results, regardless of its ranking position.
   - Brainstorm a wide variety of search terms, including long-tail keywords, service-specific queries, and location-based searches.
   - For each discovered keyword, determine its search rank (the numerical position). If the rank is very low (e.g., outside the top 200), you can state it as ">200". Be thorough and do not stop at the first few pages of results.

3. Format the Output:
   - You MUST return a valid JSON array of objects.
   - Each object in the array should represent a keyword and must have two keys: "keyword" (the search term) and "rank" (the position as a string, e.g., "5", ">50", or ">200").
   - Return a comprehensive list. Aim for a large quantity of results, including keywords with very low rankings (e.g., 50+, 100+, >200). The goal is to get a complete picture of the business's search footprint.
   - If no ranking keywords can be found, return an empty array.
   - Do not include any other text, explanations, or markdown formatting outside of the JSON array.`

// DiscoverKeywords builds the keyword-discovery prompt.
func DiscoverKeywords(business, identifier, location string) string {
	return fmt.Sprintf(discoverKeywordsTemplate, business, location, identifier)
}
