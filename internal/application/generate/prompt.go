// Package generate is the application layer for AI recipe generation: prompt
// construction, schema-constrained submission, and response validation.
package generate

import (
	"fmt"
	"strings"

	"github.com/mixmas/v2/internal/domain/recipe"
)

const systemInstruction = `<role>
You are Chef Kringle, a world-renowned expert in holiday snack mixes and Chex Mix variations.
You are precise, creative, and knowledgeable about flavor combinations and recipe development.
You excel at building upon user inspiration to create complete, innovative recipes.
</role>

<instructions>
1. **Analyze**: Review all user preferences, dietary restrictions, and flavor profile requirements. Identify user-selected ingredients as creative starting points.
2. **Plan**: Design a creative, complete recipe that:
   - Creates a UNIQUE recipe name (never used before, creative and memorable)
   - Incorporates all user-selected ingredients
   - Adds 6-12 complementary ingredients that enhance and complete the recipe
   - Achieves the desired flavor profile while respecting constraints
   - Includes proper ratios of base ingredients, mix-ins, binding agents, and seasonings
   - Plans 8-12 detailed instruction steps with precise techniques, temperatures, and timings
3. **Execute**: Generate a complete recipe with:
   - A UNIQUE, creative recipe title (completely different from any previous recipe)
   - PRECISE measurements (exact quantities with decimals when needed)
   - HIGHLY DETAILED instructions (8-12 steps with temperatures, times, techniques, equipment specs, and visual cues)
   - Clear, actionable steps that a beginner can follow
   - Helpful tips and substitutions
   - Be creative and innovative
4. **Validate**: Ensure all required fields are present, the recipe name is unique and creative, measurements are precise and accurate, instructions are detailed enough for beginners, the recipe is feasible, and it includes 8-15 total ingredients for a well-rounded result.
</instructions>

<constraints>
- Verbosity: Medium (provide helpful detail without being overly verbose)
- Tone: Warm and encouraging, with festive flair when Christmas Spirit is enabled
- Measurements: Standard US cup/tablespoon/teaspoon measurements only
- Format: JSON schema compliance is mandatory
</constraints>

<output_format>
Return a valid JSON object matching the provided schema exactly.
All string fields must be plain text (no markdown headers, code blocks, or complex formatting).
Use **bold** (double asterisks) sparingly for emphasis only in instructions and tips.
ABSOLUTELY NO EMOJIS in any field - use text-only descriptions and festive language instead.
</output_format>`

// SystemInstruction returns the persona and global output rules sent alongside
// every generation request.
func SystemInstruction() string {
	return systemInstruction
}

const spiritEnabled = `<christmas_spirit>
Mode: ENABLED
Requirements:
- Use festive language, holiday puns, and Christmas-themed references
- Apply festive elements to: Title, Description, Chef Tips, and Substitutions
- Maintain warmth and cheer throughout
- NO EMOJIS - Use text-only descriptions and festive language instead

CRITICAL - Recipe Title Requirements:
- Create a UNIQUE, creative, and festive Christmas-themed recipe name
- NEVER use generic names like "Christmas Chex Mix" or "Holiday Mix"
- Use creative wordplay, alliteration, or festive references
- Incorporate Christmas elements: Santa, elves, reindeer, snow, presents, carols, etc.
- Make each name distinct and memorable
- NO EMOJIS in titles, descriptions, tips, or any recipe content
- Examples of good unique names (NO EMOJIS):
  * "Santa's Secret Snack Stash"
  * "Frosty's Festive Crunch"
  * "Jingle Bell Jumble"
  * "Dasher's Delightful Mix"
  * "Gift-Wrapped Goodness"
  * "Snowflake Snack Symphony"
  * "North Pole Nibbles"
  * "Twinkle Twinkle Tasty Mix"
  * "Caroling Crunch Collection"
  * "Ribbon-Wrapped Revelry"
- Vary the naming style: mix of puns and descriptive names
- Each recipe name must be completely unique - never repeat or use similar names
</christmas_spirit>`

const spiritDisabled = `<christmas_spirit>
Mode: DISABLED
Requirements:
- Keep tone warm but standard
- No holiday-specific language required
- Recipe title should be creative and unique, reflecting the flavor profile
- NO EMOJIS in any recipe content
</christmas_spirit>`

const thcRequested = `<thc_infusion>
Status: REQUESTED
Requirements:
1. Include detailed instructions for infusing THC into butter or oil
2. Provide decarboxylation steps if needed
3. Include clear dosing guidelines:
   - Mild effect: 1/4 cup THC-infused butter/oil
   - Stronger effect: 1/2 cup THC-infused butter/oil
   - Always start with smaller amounts and wait 1-2 hours before consuming more
4. Add safety warnings:
   - "Start low and go slow. Effects can take 1-2 hours to fully kick in."
   - "Do not drive or operate machinery after consuming."
   - "Keep out of reach of children and pets."
   - "Only consume if you are of legal age in your jurisdiction."
5. Mention substitution option: Users can substitute regular butter/oil for non-infused version
6. In instructions: Clearly mark THC-infused ingredient steps with **bold** text
7. In Chef Tips: Include note about proper storage and labeling of THC-infused products
</thc_infusion>`

const thcNotRequested = `<thc_infusion>
Status: NOT REQUESTED
Requirements:
- Use standard butter/oil ingredients
- No THC-related content needed
</thc_infusion>`

func spiritInstructions(christmasSpirit bool) string {
	if christmasSpirit {
		return spiritEnabled
	}
	return spiritDisabled
}

func thcInstructions(thcInfused bool) string {
	if thcInfused {
		return thcRequested
	}
	return thcNotRequested
}

// formatIngredients joins a selection list, substituting a placeholder when
// the user selected nothing so the model never sees an empty instruction.
func formatIngredients(ingredients []string, fallback string) string {
	if len(ingredients) == 0 {
		return fallback
	}
	return strings.Join(ingredients, ", ")
}

// BuildPrompt maps user preferences to the complete task prompt. It is pure
// and deterministic: identical preferences yield identical prompt text.
func BuildPrompt(prefs recipe.MixPreferences) string {
	var b strings.Builder

	b.WriteString(`<task>
Create a unique, creative Chex Mix recipe that builds upon the user's ingredient selections.
The user's selections are INSPIRATION and STARTING POINTS - you must be creative and ADD complementary ingredients to create a complete, well-rounded recipe.
The recipe must be delicious, feasible, and properly balanced for flavor and texture.
</task>

<context>
<user_preferences>
`)
	fmt.Fprintf(&b, "Flavor Profile: %s\n", prefs.Vibe)
	fmt.Fprintf(&b, "User-Selected Base Ingredients (INSPIRATION ONLY): %s\n",
		formatIngredients(prefs.BaseIngredients, "Classic cereal mix (Chef choice)"))
	fmt.Fprintf(&b, "User-Selected Mix-ins/Additions (INSPIRATION ONLY): %s\n",
		formatIngredients(prefs.MixIns, "Chef choice based on flavor profile"))
	fmt.Fprintf(&b, "Dietary Restrictions: %s\n",
		formatIngredients(prefs.Dietary, "None specified"))
	fmt.Fprintf(&b, "Spiciness Level: %d (scale: 0 = no spice, 10 = very spicy)\n", prefs.SpiceLevel)
	b.WriteString(`</user_preferences>
</context>

<critical_ingredient_guidance>
**IMPORTANT**: The user's ingredient selections are a CREATIVE STARTING POINT, not a complete recipe.

You MUST:
1. **Include ALL user-selected ingredients** in the recipe (if any were selected)
2. **ADD complementary ingredients** that enhance and complete the recipe:
   - Additional Chex cereals or base ingredients that pair well
   - Complementary mix-ins, nuts, seeds, or crunchy elements
   - Binding agents (butter, oil, syrups, etc.) appropriate for the flavor profile
   - Seasonings, spices, herbs, and flavor enhancers to achieve the desired flavor profile
   - Textural elements (pretzels, crackers, chips, etc.) for variety
3. **Create a complete recipe** with 8-15 total ingredients (including user selections)
4. **Build creatively** - use the user's selections as inspiration and add ingredients that aren't in their list
5. **Ensure proper ratios** - the recipe should have a good balance of base ingredients, mix-ins, and seasonings

Example: If user selects only "Rice Chex" and "pretzels", you should ADD:
- Additional Chex varieties (Corn Chex, Wheat Chex)
- Nuts or seeds
- Butter/oil for binding
- Seasonings (Worcestershire, garlic powder, etc.)
- Additional mix-ins that complement the flavor profile
- Any other ingredients needed for a complete, delicious recipe

The goal is CREATIVITY - build a unique recipe that goes beyond the user's selections while incorporating them.
</critical_ingredient_guidance>

`)
	b.WriteString(spiritInstructions(prefs.ChristmasSpirit))
	b.WriteString("\n\n")
	b.WriteString(thcInstructions(prefs.THCInfused))
	b.WriteString("\n\n")
	b.WriteString(promptConstraints(prefs))
	b.WriteString("\n\n")
	b.WriteString(fewShotExamples)
	b.WriteString("\n\n")
	b.WriteString(finalInstruction)

	return b.String()
}

func promptConstraints(prefs recipe.MixPreferences) string {
	var b strings.Builder
	b.WriteString(`<constraints>
0. **Recipe Title Uniqueness and Creativity**:
   - The recipe title MUST be completely unique and creative
   - NEVER use generic or repetitive names like "Christmas Chex Mix", "Holiday Mix", "Festive Snack Mix", or similar variations
   - If Christmas Spirit is enabled: Create a unique festive name with Christmas themes, puns, or references
   - If Christmas Spirit is disabled: Create a unique name that reflects the flavor profile creatively
   - Use creative wordplay, alliteration, descriptive phrases, or thematic references
   - Each recipe name must be distinct - avoid patterns or similar-sounding names
   - Examples of unique approaches:
     * Thematic references: "Santa's Secret Stash", "Frosty's Crunch", "Elf Workshop Mix"
     * Wordplay: "Jingle Bell Jumble", "Crunchy Carol Collection", "Snack the Halls"
     * Descriptive: "Midnight Snow Snack", "Cozy Fireplace Mix", "Gift-Wrapped Goodness"
     * Alliteration: "Merry Mix Masterpiece", "Sweet Snowflake Snacks", "Delightful Dasher's Delight"
   - Vary naming styles between recipes - never use the same pattern twice

1. **Ingredient Creativity and Completeness**:
   - MUST include all user-selected ingredients (if any)
   - MUST ADD 6-12 additional complementary ingredients to create a complete recipe
   - Ingredients should include: base cereals, mix-ins, binding agents, seasonings, and flavor enhancers
   - Target total ingredients: 8-15 items for a well-rounded recipe
   - Be creative - add ingredients that aren't in the user's selection list

2. **Ingredient Quantities and Precision**:
   - MUST include specific, precise quantities for EVERY ingredient (e.g., "3 cups Corn Chex", "1 stick (8 tablespoons) unsalted butter", "2 tablespoons Worcestershire sauce")
   - Use exact measurements: cups, tablespoons, teaspoons with decimal precision when needed (e.g., "0.75 teaspoon", "1.5 cups")
   - NO generic terms like "some", "a pinch", "to taste", or "as needed" without specific measurements
   - Include ingredient specifications when relevant (e.g., "unsalted butter", "raw almonds", "coarse sea salt")
   - Target batch size: 10-12 cups total

3. **Required Components**:
   - MUST include necessary binding agents (butter, oil, syrups, or equivalent) for the selected flavor profile
   - MUST include appropriate seasonings, spices, and sauces to achieve the flavor profile
   - MUST account for the specified spice level (0-10) in seasoning choices
   - MUST include a variety of textures (crunchy, crispy, chewy) for interest
`)
	if prefs.THCInfused {
		b.WriteString("   - MUST include THC infusion instructions if THC infusion is requested\n")
	}
	b.WriteString(`
4. **Dietary Compliance**:
   - MUST respect all specified dietary restrictions
   - If no restrictions specified, use standard ingredients

5. **Instruction Detail and Precision**:
   - Each instruction step MUST be detailed and specific, including:
     * Exact temperatures with units (e.g., "250°F (120°C)")
     * Specific times and durations (e.g., "bake for 60 minutes", "stir every 15 minutes", "cool for 30-45 minutes")
     * Exact techniques and methods (e.g., "whisk vigorously", "toss for 2-3 minutes", "spread in single layer")
     * Equipment specifications when relevant (e.g., "large 4-quart mixing bowl", "rimmed baking sheet 18x13 inches")
     * Visual/textural cues for doneness (e.g., "golden brown", "crisp to the touch", "no longer sticky")
     * Specific actions and movements (e.g., "fold gently", "stir continuously", "distribute evenly")
   - Instructions should be 8-12 steps for a complete recipe
   - Each step should be actionable and specific enough that a beginner cook could follow it precisely
   - Include timing, temperature, and technique details in every relevant step

6. **Text Formatting**:
   - MAY use **bold** (double asterisks) to emphasize specific ingredients in instructions or tips
   - DO NOT use markdown headers (#), list bullets (-), or code blocks inside JSON string values
   - ABSOLUTELY NO EMOJIS in any recipe content (title, description, instructions, tips, substitutions)
   - Use text-only descriptions and festive language instead of emojis
   - Keep formatting minimal and UI-friendly

7. **Content Requirements**:
   - Provide 3-4 specific substitutions or variations
   - Include detailed nutrition facts per serving (approximately 1/2 cup serving size)
   - Nutrition must include: Calories, Total Fat, Saturated Fat, Trans Fat, Cholesterol, Sodium, Total Carbohydrate, Dietary Fiber, Total Sugars, Protein, Vitamin D, Calcium, Iron, Potassium
   - Estimate recipe difficulty: "easy" (simple steps, few ingredients), "medium" (moderate complexity), or "hard" (advanced techniques, multiple stages)
</constraints>`)
	return b.String()
}

const finalInstruction = `<final_instruction>
Generate a creative, PRECISE, and DETAILED recipe JSON that builds upon the user's ingredient selections. Critical requirements:

**Recipe Title Requirements:**
- Create a COMPLETELY UNIQUE recipe name that has never been used before
- If Christmas Spirit is enabled: Use festive Christmas themes, puns, wordplay, or references
- NEVER use generic names like "Christmas Chex Mix" or "Holiday Mix"
- Be creative and vary naming styles - use different approaches for each recipe
- Make the name memorable, fun, and reflective of the recipe's character
- ABSOLUTELY NO EMOJIS in titles, descriptions, or any recipe content

**Precision Requirements:**
- Include all user-selected ingredients with exact measurements
- ADD 6-12 complementary ingredients that aren't in the user's list
- Create a complete, well-rounded recipe with 8-15 total ingredients
- Use precise measurements (cups, tablespoons, teaspoons) with decimals when needed
- Specify ingredient details (e.g., "unsalted butter", "raw almonds")

**Instruction Detail Requirements:**
- Write 8-12 detailed, step-by-step instructions
- Each step MUST include: exact temperatures, specific times, precise techniques, equipment specifications, and visual/textural cues
- Instructions should be so detailed that a beginner cook can follow them precisely
- Include specific actions, movements, and methods in every step
- Provide timing, temperature, and technique details throughout

**Quality Requirements:**
- Be creative and innovative - the user's selections are inspiration, not limitations
- The recipe must achieve the desired flavor profile while respecting all constraints
- Ensure all measurements are precise and instructions are clear and sequential
- ABSOLUTELY NO EMOJIS in any recipe content - use text-only descriptions
- The output must be valid JSON matching the provided schema

Follow the examples above for the level of detail and precision required. Remember: NO EMOJIS in any field.
</final_instruction>`
