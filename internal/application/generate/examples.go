package generate

// Two worked examples pin down the expected detail level, one per flavor
// family and one with festive naming enabled.
const fewShotExamples = `<examples>
Example 1 - Savory Profile:
<preferences>
Flavor Profile: savory
Base Ingredients: Rice Chex, Wheat Chex
Mix-ins: pretzels, mixed nuts
Spice Level: 3
Christmas Spirit: false
THC Infused: false
</preferences>

<output>
{
  "title": "Classic Savory Chex Mix",
  "description": "A timeless savory snack mix with the perfect balance of salty and crunchy.",
  "prepTime": "15 minutes",
  "servings": "12 cups",
  "ingredients": [
    "3 cups Rice Chex",
    "3 cups Wheat Chex",
    "2 cups pretzel sticks",
    "1.5 cups mixed nuts",
    "6 tablespoons unsalted butter, melted",
    "2 tablespoons Worcestershire sauce",
    "1.5 teaspoons seasoned salt",
    "0.75 teaspoon garlic powder",
    "0.5 teaspoon onion powder"
  ],
  "instructions": [
    "Preheat your oven to 250°F (120°C). Position the oven rack in the center position for even heating.",
    "In a large mixing bowl (at least 4-quart capacity), combine 3 cups Rice Chex, 3 cups Wheat Chex, 2 cups pretzel sticks, and 1.5 cups mixed nuts. Use a large spoon or your hands to gently mix the dry ingredients together, being careful not to crush the cereal.",
    "In a separate small microwave-safe bowl or small saucepan, melt 6 tablespoons of unsalted butter until completely liquid (about 30-45 seconds in microwave or 2-3 minutes on stovetop over low heat).",
    "Add 2 tablespoons Worcestershire sauce, 1.5 teaspoons seasoned salt, 0.75 teaspoon garlic powder, and 0.5 teaspoon onion powder to the melted butter. Whisk vigorously with a fork or small whisk until all seasonings are fully incorporated and the mixture is smooth and uniform.",
    "Pour the warm butter and seasoning mixture evenly over the dry cereal mixture. Using a large spatula or clean hands, toss and fold the mixture continuously for 2-3 minutes until every piece is evenly coated with the seasoning mixture. The coating should be uniform with no dry spots.",
    "Line a large rimmed baking sheet (18x13 inches or similar) with parchment paper or aluminum foil for easy cleanup. Spread the coated mixture in a single, even layer across the entire baking sheet, ensuring pieces are not overlapping or piled up.",
    "Place the baking sheet in the preheated 250°F oven. Bake for 60 minutes total, removing from oven every 15 minutes to stir and redistribute the mixture. Use a spatula to flip and stir, ensuring even browning. The mix is done when it's golden brown, fragrant, and crisp to the touch (about 60 minutes total).",
    "Remove from oven and let the mix cool completely on the baking sheet at room temperature for at least 30-45 minutes, or until completely cool to the touch. Do not store while warm as it will become soggy. Once completely cooled, transfer to an airtight container for storage."
  ],
  "chefTips": [
    "For extra crunch, bake for an additional 10-15 minutes.",
    "Store in an airtight container to maintain freshness for up to 2 weeks.",
    "Feel free to add your favorite nuts or seeds."
  ],
  "substitutions": [
    "Substitute Corn Chex for Rice Chex if preferred",
    "Use olive oil instead of butter for a dairy-free option",
    "Replace mixed nuts with your favorite nut variety",
    "Add a dash of cayenne pepper for extra heat"
  ],
  "nutrition": {
    "calories": "180",
    "totalFat": "12g",
    "saturatedFat": "4g",
    "transFat": "0g",
    "cholesterol": "15mg",
    "sodium": "380mg",
    "totalCarbohydrate": "18g",
    "dietaryFiber": "2g",
    "totalSugars": "2g",
    "protein": "4g",
    "vitaminD": "0mcg",
    "calcium": "60mg",
    "iron": "4.5mg",
    "potassium": "120mg"
  },
  "themeColor": "#8B4513"
}
</output>

Example 2 - Sweet Profile with Christmas Spirit:
<preferences>
Flavor Profile: sweet
Base Ingredients: Corn Chex, Rice Chex
Mix-ins: white chocolate chips, dried cranberries
Spice Level: 0
Christmas Spirit: true
THC Infused: false
</preferences>

<output>
{
  "title": "Jingle Bell Jumble",
  "description": "A festive sweet treat that'll make your taste buds sing carols! Perfect for holiday gatherings.",
  "prepTime": "20 minutes",
  "servings": "10 cups",
  "ingredients": [
    "4 cups Corn Chex",
    "3 cups Rice Chex",
    "1.5 cups white chocolate chips",
    "1 cup dried cranberries",
    "0.5 cup honey",
    "0.25 cup unsalted butter",
    "1 teaspoon vanilla extract",
    "0.5 teaspoon ground cinnamon"
  ],
  "instructions": [
    "Line a large rimmed baking sheet (18x13 inches or similar) with parchment paper, ensuring the paper covers the entire surface. Set aside.",
    "In a large mixing bowl (at least 4-quart capacity), combine 4 cups Corn Chex, 3 cups Rice Chex, and 1 cup dried cranberries. Use a large spoon to gently mix the dry ingredients together, being careful not to break the cereal pieces.",
    "In a microwave-safe bowl (glass or ceramic works best), combine 0.5 cup honey and 0.25 cup unsalted butter. Heat in the microwave on high power for 30 seconds, then remove and stir with a fork or whisk. If the butter isn't fully melted, heat for an additional 15-20 seconds and stir again until the mixture is smooth, warm, and pourable.",
    "Add 1 teaspoon vanilla extract and 0.5 teaspoon ground cinnamon to the warm honey-butter mixture. Stir vigorously with a fork or small whisk for 30-60 seconds until all ingredients are fully incorporated and the mixture is uniform in color and consistency.",
    "Immediately pour the warm honey-butter mixture over the cereal and cranberry mixture while it's still warm (this helps with coating). Using a large spatula or clean hands, toss and fold the mixture continuously for 2-3 minutes, ensuring every piece of cereal and every cranberry is evenly coated with the sweet mixture. The coating should be glossy and uniform.",
    "Spread the coated mixture evenly across the prepared parchment-lined baking sheet in a single layer. Use the spatula to distribute it evenly, ensuring pieces aren't clumped together. Allow the mixture to cool at room temperature for 10-15 minutes, or until the coating has set and is no longer sticky to the touch.",
    "Once the mixture has cooled and the coating has set, add 1.5 cups white chocolate chips. Gently fold the chocolate chips into the cooled mix using a spatula or your hands, being careful not to crush the cereal. Mix just until the chocolate chips are evenly distributed throughout.",
    "Transfer the completed mix to an airtight container (glass or plastic with a tight-fitting lid). Store in a cool, dry place away from direct sunlight. The mix will stay fresh for up to 2 weeks when properly stored."
  ],
  "chefTips": [
    "Let the mix cool completely before adding chocolate chips to prevent melting.",
    "For extra holiday flair, add red and green M&M's or sprinkles!",
    "Store in a cool, dry place to keep the chocolate chips from melting."
  ],
  "substitutions": [
    "Use dark chocolate chips instead of white chocolate for a richer flavor",
    "Substitute dried cherries or raisins for cranberries",
    "Replace honey with maple syrup for a different sweetness profile",
    "Add chopped pecans or almonds for extra crunch"
  ],
  "nutrition": {
    "calories": "220",
    "totalFat": "8g",
    "saturatedFat": "5g",
    "transFat": "0g",
    "cholesterol": "12mg",
    "sodium": "180mg",
    "totalCarbohydrate": "38g",
    "dietaryFiber": "2g",
    "totalSugars": "22g",
    "protein": "3g",
    "vitaminD": "0mcg",
    "calcium": "80mg",
    "iron": "5mg",
    "potassium": "100mg"
  },
  "themeColor": "#DC143C"
}
</output>
</examples>`
