package itinerary

import (
	"fmt"
	"strings"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
)

const promptSections = `
Format your response in Markdown with proper headings, lists, and emphasis.
All costs should be in Indian Rupees (₹).

Please include:

# Travel Plan: %[1]s to %[2]s

## Overview
*A comprehensive overview of the destination with key highlights, best time to visit, and cultural significance*

## Accommodation Options
*Suggest 3-4 accommodation options within the budget with brief descriptions, amenities, and approximate costs in Indian Rupees*

## Day-by-Day Itinerary
*Detailed daily plan with activities, attractions, and estimated costs. If the user hasn't specified interests, include a variety of popular attractions, cultural experiences, and hidden gems*

## Local Cuisine
*Recommendations for must-try local foods, popular restaurants, and approximate meal costs*

## Travel Tips
*Practical advice specific to the destination including local transportation, safety tips, cultural etiquette, and language basics*

## Packing Suggestions
*What to bring based on the destination, weather during the travel dates, and planned activities*

## Budget Breakdown
*Detailed estimated costs in Indian Rupees (₹) for accommodation, food, activities, local transportation, and miscellaneous expenses*
`

// BuildPrompt renders the itinerary request sent to the language model.
func BuildPrompt(req dto.TripRequest) string {
	var b strings.Builder

	b.WriteString("Create a detailed travel plan with the following information:\n")
	fmt.Fprintf(&b, "- Source: %s\n", req.Source)
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Travel Dates: %s\n", req.Dates)
	fmt.Fprintf(&b, "- Budget: %s (in Indian Rupees)\n", req.Budget)
	fmt.Fprintf(&b, "- Number of Travelers: %d\n", req.Travelers)

	if interests := strings.TrimSpace(req.Interests); interests != "" {
		fmt.Fprintf(&b, "- Interests: %s\n", interests)
	}

	fmt.Fprintf(&b, promptSections, req.Source, req.Destination)

	return b.String()
}
