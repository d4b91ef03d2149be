package semflo

const courseListPage = `<!DOCTYPE html>
<html>
<body>
<div class="container mx-auto">
<a href="/logout">Se déconnecter</a>
<table class="w-full text-md bg-white shadow-md rounded mb-4">
<tr><th>Cours</th><th>Enseignant</th><th>Carnet</th></tr>
<tr>
  <td> Mathématiques </td>
  <td>M. Dupont</td>
  <td><a href="/carnet-de-notes/math-4a/p2">Voir le carnet</a></td>
</tr>
<tr>
  <td>Français</td>
  <td>Mme Petit</td>
  <td><a href="/carnet-de-notes/fr-4a/p1">Voir le carnet</a></td>
</tr>
<tr>
  <td>Sciences</td>
  <td>M. Laurent</td>
  <td>carnet indisponible</td>
</tr>
<tr>
  <td>ligne incomplète</td>
</tr>
</table>
</div>
</body>
</html>`

const gradebookPage = `<!DOCTYPE html>
<html>
<body>
<a href="/logout">Se déconnecter</a>
<table class="w-full text-md bg-white shadow-md rounded mb-4">
<tr><th>#</th><th>Titre</th><th>Date</th><th>Note</th></tr>
<tr>
  <td>1</td>
  <td>Interro chapitre 1</td>
  <td>10/09/2024</td>
  <td>8 / 10</td>
</tr>
<tr>
  <td>2</td>
  <td>Devoir maison</td>
  <td>en attente</td>
  <td>absent</td>
</tr>
<tr>
  <td>3</td>
  <td>Examen de décembre</td>
  <td>15/12/2024</td>
  <td>45.5 / 60</td>
</tr>
<tr>
  <td>4</td>
  <td>ligne incomplète</td>
</tr>
</table>
</body>
</html>`

const missingTablePage = `<!DOCTYPE html>
<html>
<body>
<p>Maintenance en cours.</p>
</body>
</html>`
