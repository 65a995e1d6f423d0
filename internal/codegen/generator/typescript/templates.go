package typescript

const fileTemplateTS = `{{.Header}}
{{- if .Import}}

import { {{join .Documents ", "}} } from {{.Import}};
{{- end}}

export type GraphQLInputTypeMetadata =
  GraphQLInputScalarTypeMetadata |
  GraphQLInputEnumTypeMetadata |
  GraphQLInputObjectTypeMetadata;

interface BaseGraphQLInputTypeMetadata {
  readonly type: string;
  readonly description?: string;
}

export interface GraphQLInputScalarTypeMetadata extends BaseGraphQLInputTypeMetadata {
  readonly kind: 'scalar';
}

export interface GraphQLInputEnumTypeMetadata extends BaseGraphQLInputTypeMetadata {
  readonly kind: 'enum';
  readonly values: ReadonlyArray<string>;
}

export interface GraphQLInputObjectTypeMetadata extends BaseGraphQLInputTypeMetadata {
  readonly kind: 'object';
  readonly fields: ReadonlyArray<GraphQLInputObjectFieldMetadata>;
}

export type GraphQLInputObjectFieldMetadata =
  GraphQLInputObjectScalarFieldMetadata |
  GraphQLInputObjectEnumFieldMetadata |
  GraphQLInputObjectObjectFieldMetadata |
  GraphQLInputObjectListFieldMetadata |
  GraphQLInputObjectScalarListFieldMetadata;

interface BaseGraphQLInputObjectFieldMetadata {
  readonly name: string;
  readonly required: boolean;
  readonly validation?: ReadonlyArray<GraphQLInputObjectFieldValidationMetadata>;
}

export interface GraphQLInputObjectScalarFieldMetadata extends BaseGraphQLInputObjectFieldMetadata {
  readonly kind: 'scalar';
  readonly type: string;
}

export interface GraphQLInputObjectEnumFieldMetadata extends BaseGraphQLInputObjectFieldMetadata {
  readonly kind: 'enum';
  readonly type: GraphQLInputEnumTypeMetadata;
}

export interface GraphQLInputObjectObjectFieldMetadata extends BaseGraphQLInputObjectFieldMetadata {
  readonly kind: 'object';
  readonly type: GraphQLInputObjectTypeMetadata;
}

interface BaseGraphQLInputObjectListFieldMetadata extends BaseGraphQLInputObjectFieldMetadata {
  readonly kind: 'list';
  readonly allowsEmpty: boolean;
}

export interface GraphQLInputObjectListFieldMetadata extends BaseGraphQLInputObjectListFieldMetadata {
  readonly itemKind: 'enum' | 'object';
  readonly type: GraphQLInputTypeMetadata;
}

export interface GraphQLInputObjectScalarListFieldMetadata extends BaseGraphQLInputObjectListFieldMetadata {
  readonly itemKind: 'scalar';
  readonly type: string;
}

export interface GraphQLInputObjectFieldValidationMetadata {
  readonly type: string;
  readonly constraints?: ReadonlyArray<any>;
  readonly each?: boolean;
  readonly context?: any;
  readonly options?: any;
}

export namespace GraphQLInputTypes {
{{- range .Declarations}}

  export const {{.Name}}: {{.Interface}} = {
    kind: '{{.Kind}}',
    type: {{.Type}},
{{- with .Description}}
    description: {{.}},
{{- end}}
{{- if .Values}}
    values: [
{{- range .Values}}
      {{.}},
{{- end}}
    ],
{{- end}}
{{- if .IsObject}}
    fields: [
{{- range .Fields}}
      {
        name: {{.Name}},
        kind: '{{.Kind}}',
{{- with .ItemKind}}
        itemKind: '{{.}}',
{{- end}}
        type: {{.Type}},
        required: {{.Required}},
{{- with .AllowsEmpty}}
        allowsEmpty: {{.}},
{{- end}}
{{- if .Validation}}
        validation: [
{{- range .Validation}}
          {
            type: {{.Type}},
{{- if .Constraints}}
            constraints: [{{join .Constraints ", "}}],
{{- end}}
{{- if .Each}}
            each: true,
{{- end}}
{{- with .Context}}
            context: {{.}},
{{- end}}
{{- with .Options}}
            options: {{.}},
{{- end}}
          },
{{- end}}
        ],
{{- end}}
      },
{{- end}}
    ],
{{- end}}
  };
{{- end}}
}

export interface GraphQLOperationMetadata<DocumentType> {
  readonly operation: string;
  readonly operationType: 'query' | 'mutation' | 'subscription';
  readonly document: DocumentType;
  readonly parameters?: ReadonlyArray<GraphQLOperationParameterMetadata>;
}

export type GraphQLOperationParameterMetadata =
  GraphQLOperationScalarParameterMetadata |
  GraphQLOperationUnitParameterMetadata |
  GraphQLOperationListParameterMetadata |
  GraphQLOperationScalarListParameterMetadata;

interface BaseGraphQLOperationParameterMetadata {
  readonly parameter: string;
  readonly required: boolean;
  readonly directives?: ReadonlyArray<string>;
}

export interface GraphQLOperationScalarParameterMetadata extends BaseGraphQLOperationParameterMetadata {
  readonly kind: 'scalar';
  readonly type: string;
}

export interface GraphQLOperationUnitParameterMetadata extends BaseGraphQLOperationParameterMetadata {
  readonly kind: 'enum' | 'object';
  readonly type: GraphQLInputTypeMetadata;
}

interface BaseGraphQLOperationListParameterMetadata extends BaseGraphQLOperationParameterMetadata {
  readonly kind: 'list';
  readonly allowsEmpty: boolean;
}

export interface GraphQLOperationListParameterMetadata extends BaseGraphQLOperationListParameterMetadata {
  readonly itemKind: 'enum' | 'object';
  readonly type: GraphQLInputTypeMetadata;
}

export interface GraphQLOperationScalarListParameterMetadata extends BaseGraphQLOperationListParameterMetadata {
  readonly itemKind: 'scalar';
  readonly type: string;
}
{{- range .Operations}}

export const {{.Name}}Operation: GraphQLOperationMetadata<typeof {{.Document}}> = {
  operation: {{.Operation}},
  operationType: '{{.Kind}}',
  document: {{.Document}},
  parameters: [
{{- range .Parameters}}
    {
      parameter: {{.Name}},
      required: {{.Required}},
      kind: '{{.Kind}}',
{{- with .ItemKind}}
      itemKind: '{{.}}',
{{- end}}
      type: {{.Type}},
{{- with .AllowsEmpty}}
      allowsEmpty: {{.}},
{{- end}}
{{- if .Directives}}
      directives: [{{join .Directives ", "}}],
{{- end}}
    },
{{- end}}
  ],
};
{{- end}}
`
