package csvimport

// RecipeTemplate is a one-row example recipe document. Its header must match
// RecipeColumns.
const RecipeTemplate = `title,description,category,difficulty,prepTime,cookTime,servings,season,requiredFinds,ingredients,instructions,tags
"Elderflower Cordial","A fragrant summer cordial made from fresh elderflower heads","drinks","easy",20,10,8,"late spring|early summer","elderflower","20 elderflower heads|1.5 kg sugar|1.5 l water|2 lemons|55 g citric acid","Bring the water to the boil and dissolve the sugar|Zest and slice the lemons|Add the flowers, lemons and citric acid|Cover and steep for 24 hours|Strain through muslin and bottle","cordial|summer|elderflower"
`

// PlantTemplate is a one-row example plant document. Its header must match
// PlantColumns.
const PlantTemplate = `name,latinName,family,category,description,heroImage,images,keyFeatures,habitat,season,lookAlikes,safe,preparation,warnings,toxicParts,culinary,medicinal,traditional,recipes,conservationStatus,ethics,inJan,inFeb,inMar,inApr,inMay,inJun,inJul,inAug,inSep,inOct,inNov,inDec
"Wild Garlic","Allium ursinum","Amaryllidaceae","leaves","Broad-leaved woodland plant with a strong garlic smell","https://example.com/wild-garlic.jpg","https://example.com/wild-garlic.jpg|https://example.com/wild-garlic-flower.jpg","Broad lance-shaped leaves|Strong garlic smell when crushed|White star-shaped flowers","Damp deciduous woodland|Shady riverbanks","spring","Lily of the valley|Lords and ladies",true,"Eat raw in salads|Wilt into soups","Always crush a leaf and smell it before picking","","Pesto|Soups","Traditionally used to support digestion","Spring tonic","Wild Garlic Pesto","common","Pick one leaf per plant|Never uproot bulbs",false,false,true,true,true,false,false,false,false,false,false,false
`
